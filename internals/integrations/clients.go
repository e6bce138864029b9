package integrations

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stripe/stripe-go/v76/client"

	"studioe_backend/internals/configs"
)

// Clients bundles every external service client. Each is constructed once at
// boot and injected into controllers; a nil field means the credentials were
// absent and the owning feature must report itself unavailable.
type Clients struct {
	Stripe   *client.API
	Sendgrid *sendgrid.Client
	OSS      *OSSUploader
	S3       *S3Uploader

	EmailFrom           string
	StripeWebhookSecret string
}

func NewClients(cfg *configs.Config) *Clients {
	c := &Clients{
		EmailFrom:           cfg.EmailFrom,
		StripeWebhookSecret: cfg.StripeWebhookSecret,
	}

	if cfg.StripeSecretKey != "" {
		c.Stripe = client.New(cfg.StripeSecretKey, nil)
		log.Println("[SUCCESS] Stripe client ready")
	}

	if cfg.SendgridAPIKey != "" {
		c.Sendgrid = sendgrid.NewSendClient(cfg.SendgridAPIKey)
		log.Println("[SUCCESS] SendGrid client ready")
	}

	if cfg.OSSEndpoint != "" && cfg.OSSKeyID != "" && cfg.OSSBucket != "" {
		uploader, err := NewOSSUploader(cfg)
		if err != nil {
			log.Printf("[ERROR] OSS init: %v", err)
		} else {
			c.OSS = uploader
			log.Println("[SUCCESS] OSS uploader ready")
		}
	}

	if cfg.S3Region != "" && cfg.S3Bucket != "" {
		uploader, err := NewS3Uploader(cfg)
		if err != nil {
			log.Printf("[ERROR] S3 init: %v", err)
		} else {
			c.S3 = uploader
			log.Println("[SUCCESS] S3 uploader ready")
		}
	}

	return c
}

// S3Uploader pushes media assets (blog covers, event flyers) to S3.
type S3Uploader struct {
	Client *s3.Client
	Bucket string
}

func NewS3Uploader(cfg *configs.Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}
	return &S3Uploader{
		Client: s3.NewFromConfig(awsCfg),
		Bucket: cfg.S3Bucket,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        newBytesReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return "https://" + u.Bucket + ".s3.amazonaws.com/" + key, nil
}
