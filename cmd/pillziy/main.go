package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pillziy/pillziy-cli/internal/adapters/driven/camera/imagefile"
	configfile "github.com/pillziy/pillziy-cli/internal/adapters/driven/config/file"
	"github.com/pillziy/pillziy-cli/internal/adapters/driven/recognizer/tesseract"
	storagefile "github.com/pillziy/pillziy-cli/internal/adapters/driven/storage/file"
	"github.com/pillziy/pillziy-cli/internal/adapters/driven/storage/sqlite"
	"github.com/pillziy/pillziy-cli/internal/adapters/driving/cli"
	"github.com/pillziy/pillziy-cli/internal/core/domain"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driven"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driving"
	"github.com/pillziy/pillziy-cli/internal/core/services"
)

// version is overridden at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	blobs, storePath, closeStore, err := openBlobStore(config)
	if err != nil {
		return fmt.Errorf("failed to open medication store: %w", err)
	}
	defer closeStore()

	repo := services.NewMedicationService(ctx, blobs)

	cli.SetVersion(version)
	cli.SetConfigStore(config)
	cli.SetMedicationRepository(repo)
	cli.SetStorePath(storePath)
	cli.SetIntakeFactory(func(imagePath string, rotation int) driving.IntakeService {
		camera := imagefile.NewCamera(imagePath, domain.OrientationFromDegrees(rotation))
		return services.NewIntakeService(camera, tesseract.NewRecognizer(), repo, config)
	})

	return cli.Execute()
}

// openBlobStore picks the storage backend from config. The file
// backend is the default; "sqlite" keeps all slots in a single
// database file instead.
func openBlobStore(config driven.ConfigStore) (driven.BlobStore, string, func(), error) {
	dataDir := config.GetString("storage.dir")

	if config.GetString("storage.backend") == "sqlite" {
		store, err := sqlite.NewBlobStore(dataDir)
		if err != nil {
			return nil, "", nil, err
		}
		return store, store.Path(), func() { _ = store.Close() }, nil
	}

	store, err := storagefile.NewBlobStore(dataDir)
	if err != nil {
		return nil, "", nil, err
	}
	return store, store.Path(services.StorageKey), func() {}, nil
}
