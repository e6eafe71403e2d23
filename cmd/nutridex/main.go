package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/hupe1980/nutridex"
	"github.com/hupe1980/nutridex/blobstore"
	"github.com/hupe1980/nutridex/blobstore/minio"
	"github.com/hupe1980/nutridex/blobstore/s3"
	"github.com/hupe1980/nutridex/bptree"
	"github.com/hupe1980/nutridex/dataset"
	"github.com/hupe1980/nutridex/internal/cli"
	"github.com/hupe1980/nutridex/model"
)

var (
	dataDir         = flag.String("data", "data", "Directory used as the local blob store.")
	cacheDir        = flag.String("cache", "", "Local cache directory for a remote blob store.")
	s3Bucket        = flag.String("s3-bucket", "", "Use this S3 bucket as the blob store.")
	s3Prefix        = flag.String("s3-prefix", "", "Key prefix inside the S3 bucket.")
	minioEndpoint   = flag.String("minio-endpoint", "", "Use the MinIO server at this endpoint as the blob store.")
	minioBucket     = flag.String("minio-bucket", "nutridex", "MinIO bucket name.")
	minioAccessKey  = flag.String("minio-access-key", os.Getenv("MINIO_ACCESS_KEY"), "MinIO access key.")
	minioSecretKey  = flag.String("minio-secret-key", os.Getenv("MINIO_SECRET_KEY"), "MinIO secret key.")
	minioSecure     = flag.Bool("minio-secure", false, "Connect to MinIO over TLS.")
	branchingFactor = flag.Int("bf", bptree.DefaultBranchingFactor, "Branching factor of the attribute indexes.")
	attributes      = flag.String("attributes", strings.Join(model.DefaultAttributes, ","), "Comma-separated numeric attributes to index.")
	logLevel        = flag.String("log-level", "warn", "Log level: debug, info, warn or error.")
	logFormat       = flag.String("log-format", "text", "Log format: text or json.")
	loadFiles       = flag.String("load", "", "Comma-separated files to load on startup.")
)

func main() {
	setupFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := newLogger()
	if err != nil {
		log.Fatal(err)
	}

	blobs, err := newBlobStore(ctx)
	if err != nil {
		log.Fatal(err)
	}

	metrics := &nutridex.BasicMetricsCollector{}
	store, err := nutridex.New(
		nutridex.WithAttributes(strings.Split(*attributes, ",")...),
		nutridex.WithBranchingFactor(*branchingFactor),
		nutridex.WithLogger(logger),
		nutridex.WithMetricsCollector(metrics),
	)
	if err != nil {
		log.Fatal(err)
	}

	if *loadFiles != "" {
		report, err := dataset.Load(ctx, blobs, store, strings.Split(*loadFiles, ","))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Loaded %d records (%d skipped, %d duplicates).\n", report.Loaded, report.Skipped, report.Duplicates)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, store, blobs, metrics)
	if err := demo.Start(ctx); err != nil {
		log.Fatal(err)
	}
}

func newLogger() (*nutridex.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, err
	}

	switch *logFormat {
	case "text":
		return nutridex.NewTextLogger(level), nil
	case "json":
		return nutridex.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", *logFormat)
	}
}

func newBlobStore(ctx context.Context) (blobstore.BlobStore, error) {
	var remote blobstore.BlobStore

	switch {
	case *s3Bucket != "" && *minioEndpoint != "":
		return nil, errors.New("-s3-bucket and -minio-endpoint are mutually exclusive")
	case *s3Bucket != "":
		store, err := s3.NewFromDefaultConfig(ctx, *s3Bucket, *s3Prefix)
		if err != nil {
			return nil, err
		}
		remote = store
	case *minioEndpoint != "":
		store, err := minio.NewFromEndpoint(ctx, minio.Config{
			Endpoint:  *minioEndpoint,
			AccessKey: *minioAccessKey,
			SecretKey: *minioSecretKey,
			Secure:    *minioSecure,
			Bucket:    *minioBucket,
		})
		if err != nil {
			return nil, err
		}
		remote = store
	default:
		return blobstore.NewLocalStore(*dataDir), nil
	}

	if *cacheDir != "" {
		return blobstore.NewCachingStore(remote, blobstore.NewLocalStore(*cacheDir)), nil
	}
	return remote, nil
}

func setupFlags() {
	flag.Usage = func() {
		fmt.Println("\nNutridex CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
