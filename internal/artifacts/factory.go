package artifacts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AmeyaVir/bom-render/internal/artifacts/drivers"
	"github.com/AmeyaVir/bom-render/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewServiceFromConfig creates an artifact service backed by the storage
// named in the configuration.
func NewServiceFromConfig(ctx context.Context, cfg config.StorageConfig) (*Service, error) {
	switch cfg.Type {
	case "local":
		slog.Info("Initializing local artifact storage", "dir", cfg.LocalBaseDir)
		driver, err := drivers.NewLocalFSDriver(cfg.LocalBaseDir, uploadsPrefix, resultsPrefix)
		if err != nil {
			return nil, err
		}
		return NewService(driver), nil
	case "s3":
		slog.Info("Initializing S3 artifact storage", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)

		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.S3Region),
		}

		if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
			creds := credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")
			opts = append(opts, awsconfig.WithCredentialsProvider(creds))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.S3Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			}
			o.UsePathStyle = true
		})

		return NewService(drivers.NewS3Driver(client, cfg.S3Bucket)), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
