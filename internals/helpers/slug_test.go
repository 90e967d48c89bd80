package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "tanvir-ahmed", Slugify("Tanvir Ahmed", 100))
	assert.Equal(t, "md-rakibul-islam", Slugify("  Md. Rakibul   Islam  ", 100))
	assert.Equal(t, "a-b-c", Slugify("a---b___c", 100))
	assert.Equal(t, "tutor", Slugify("!!!", 100))
	assert.Equal(t, "tutor", Slugify("", 100))
}

func TestSlugifyMaxLen(t *testing.T) {
	got := Slugify("abcdef ghijkl", 8)
	assert.LessOrEqual(t, len(got), 8)
	assert.Equal(t, "abcdef-g", got)

	// potongan tidak boleh berakhir dengan hyphen
	got = Slugify("abcdef ghijkl", 7)
	assert.Equal(t, "abcdef", got)
}
