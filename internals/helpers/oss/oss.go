// internals/helpers/oss/oss.go
package oss

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"sync"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"yoda_backend/internals/configs"
	helper "yoda_backend/internals/helpers"
)

var (
	clientOnce sync.Once
	client     *alioss.Client
	clientErr  error
)

func getBucket() (*alioss.Bucket, error) {
	clientOnce.Do(func() {
		client, clientErr = alioss.New(
			configs.OSSEndpoint,
			configs.OSSAccessKeyID,
			configs.OSSAccessSecret,
		)
	})
	if clientErr != nil {
		return nil, fmt.Errorf("gagal inisialisasi OSS client: %w", clientErr)
	}
	return client.Bucket(configs.OSSBucket)
}

// UploadPicture mengubah upload jadi webp lalu menyimpannya di OSS.
// Return: public URL object.
func UploadPicture(folder string, fileHeader *multipart.FileHeader) (string, error) {
	buf, err := helper.ConvertImageToWebP(fileHeader)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s-%s.webp",
		folder, time.Now().Format("20060102"), uuid.New().String())

	bucket, err := getBucket()
	if err != nil {
		return "", err
	}
	if err := bucket.PutObject(key, bytes.NewReader(buf.Bytes()),
		alioss.ContentType("image/webp")); err != nil {
		return "", fmt.Errorf("upload OSS gagal: %w", err)
	}

	return fmt.Sprintf("https://%s.%s/%s", configs.OSSBucket, configs.OSSEndpoint, key), nil
}

func DeleteObject(key string) error {
	bucket, err := getBucket()
	if err != nil {
		return err
	}
	return bucket.DeleteObject(key)
}
