package archive

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/klauspost/compress/zstd"
)

var langFileExt = map[string]string{
	"javascript": "js",
	"python":     "py",
	"java":       "java",
}

// CodeArchive stores zstd-compressed copies of submitted source code
// in an S3 bucket, keyed by session and submission. The session
// record stays the source of truth; the archive exists for audit and
// for reviewing attempts after a session is archived.
type CodeArchive struct {
	client *s3.Client
	bucket string
	region string
}

func NewCodeArchive(region string, bucket string) (*CodeArchive, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &CodeArchive{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// StoreSubmission compresses and uploads one submitted source file.
// Returns the URL of the stored object.
func (a *CodeArchive) StoreSubmission(
	sessionId string,
	submissionId string,
	langId string,
	code string,
) (string, error) {
	ext, ok := langFileExt[langId]
	if !ok {
		ext = "txt"
	}
	key := fmt.Sprintf("submissions/%s/%s.%s.zst", sessionId, submissionId, ext)

	compressed, err := compressWithZstd([]byte(code))
	if err != nil {
		return "", fmt.Errorf("failed to compress submission: %w", err)
	}

	mediaType := "application/zstd"
	_, err = a.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      &a.bucket,
		Key:         &key,
		Body:        bytes.NewReader(compressed),
		ContentType: &mediaType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload submission: %w", err)
	}

	objectURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key)
	return objectURL, nil
}

func compressWithZstd(body []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer encoder.Close()
	return encoder.EncodeAll(body, nil), nil
}
