// Package aws archives accepted audio uploads to S3. The archive is
// best-effort: the analysis pipeline proceeds whether or not the upload
// succeeds.
package aws

import (
	"bytes"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/rs/zerolog/log"
)

type Client struct {
	session  *session.Session
	bucket   string
	region   string
	uploader *s3manager.Uploader
}

func NewClient(region, bucket string) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("create AWS session: %w", err)
	}

	log.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("Audio archive configured")

	return &Client{
		session:  sess,
		bucket:   bucket,
		region:   region,
		uploader: s3manager.NewUploader(sess),
	}, nil
}

// ArchiveAudio stores the raw upload under uploads/ with a timestamped key and
// returns the object URL.
func (c *Client) ArchiveAudio(data []byte, filename string) (string, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("uploads/%d%s", time.Now().UnixNano(), ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", c.bucket).
			Str("key", key).
			Msg("Audio archive upload failed")
		return "", fmt.Errorf("failed to archive audio to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)

	log.Info().
		Str("s3_url", url).
		Int("content_size", len(data)).
		Msg("Audio archived to S3")

	return url, nil
}
