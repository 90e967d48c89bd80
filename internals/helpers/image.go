package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	maxPictureDim     = 1024
	webpQuality       = 80
	maxUploadSizeByte = 5 * 1024 * 1024
)

// ConvertImageToWebP membaca file upload (jpeg/png/webp), resize ke maksimal
// 1024px sisi terpanjang, lalu encode webp. Hasilnya siap diunggah ke OSS.
func ConvertImageToWebP(fileHeader *multipart.FileHeader) (*bytes.Buffer, error) {
	if fileHeader.Size > maxUploadSizeByte {
		return nil, fmt.Errorf("ukuran file melebihi %dMB", maxUploadSizeByte/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxPictureDim || b.Dy() > maxPictureDim {
		img = imaging.Fit(img, maxPictureDim, maxPictureDim, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf, nil
}
