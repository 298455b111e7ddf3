package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Creates the images and pdfs buckets with a public-read policy so
// uploaded media is reachable through permanent URLs. Run once per
// environment.
func main() {
	godotenv.Load()

	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	useSSL := os.Getenv("S3_USE_SSL") == "true"
	region := os.Getenv("S3_REGION")

	buckets := []string{
		envOr("S3_IMAGES_BUCKET", "images"),
		envOr("S3_PDFS_BUCKET", "pdfs"),
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()
	for _, bucket := range buckets {
		if err := ensureBucket(ctx, client, bucket, region); err != nil {
			log.Fatalf("Bucket %s: %v", bucket, err)
		}
	}
	fmt.Println("All buckets ready")
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket, region string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("create failed: %w", err)
		}
		fmt.Printf("Created bucket %s\n", bucket)
	} else {
		fmt.Printf("Bucket %s already exists\n", bucket)
	}

	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": map[string]interface{}{"AWS": []string{"*"}},
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/*", bucket)},
			},
		},
	}
	raw, err := json.Marshal(policy)
	if err != nil {
		return err
	}
	if err := client.SetBucketPolicy(ctx, bucket, string(raw)); err != nil {
		return fmt.Errorf("set policy failed: %w", err)
	}
	fmt.Printf("Public-read policy applied to %s\n", bucket)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
