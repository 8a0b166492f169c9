package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"coin-browser-go/internal/browser"
	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var saveDir string

	cmd := &cobra.Command{
		Use:   "show <coin_id>",
		Short: "Show the full record of a coin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coinId, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid coin id %q", args[0])
			}

			detail, err := gateway.GetCoinDetail(cmd.Context(), coinId)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("coin %d not found", coinId)
			}
			if err != nil {
				return fmt.Errorf("get coin %d: %w", coinId, err)
			}
			printDetail(cmd.OutOrStdout(), detail)

			if saveDir == "" {
				return nil
			}

			resp, err := gateway.GetCoinImages(cmd.Context(), coinId)
			if err != nil {
				return fmt.Errorf("get images of coin %d: %w", coinId, err)
			}
			paths, err := saveImages(saveDir, coinId, browser.DecodeImages(resp.Images))
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&saveDir, "save-images", "", "Write the coin photos to this directory")
	return cmd
}

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

func saveImages(dir string, coinId int, images []models.Image) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(images))
	for i, img := range images {
		ext, ok := imageExtensions[img.ContentType]
		if !ok {
			ext = ".bin"
		}
		path := filepath.Join(dir, fmt.Sprintf("coin-%d-%d%s", coinId, i+1, ext))
		if err := os.WriteFile(path, img.Data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
