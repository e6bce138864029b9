package integrations

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"studioe_backend/internals/configs"
)

// OSSUploader stores user profile images on Aliyun OSS.
type OSSUploader struct {
	bucket    *oss.Bucket
	publicURL string
}

func NewOSSUploader(cfg *configs.Config) (*OSSUploader, error) {
	cli, err := oss.New(cfg.OSSEndpoint, cfg.OSSKeyID, cfg.OSSKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := cli.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.OSSEndpoint, "https://"), "http://")
	return &OSSUploader{
		bucket:    bucket,
		publicURL: "https://" + cfg.OSSBucket + "." + endpoint,
	}, nil
}

// UploadProfileImage stores an already-encoded image under a per-user prefix
// and returns its public URL.
func (u *OSSUploader) UploadProfileImage(userID, ext, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("profiles/%s/%s-%s%s",
		userID, time.Now().UTC().Format("20060102150405"), shortID(), ext)

	err := u.bucket.PutObject(key, bytes.NewReader(data),
		oss.ContentType(contentType),
		oss.ObjectACL(oss.ACLPublicRead),
	)
	if err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return u.publicURL + "/" + key, nil
}

func shortID() string {
	return strings.Split(uuid.NewString(), "-")[0]
}

func newBytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}
