package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// UploadImagesToS3 ingests a set of images (local dataset files or remote
// URLs) and uploads them to S3 under the given folder prefix.
// Returns a map of original path/URL -> S3 Object Key. Individual failures
// are logged and skipped, they do not abort the batch.
func UploadImagesToS3(ctx context.Context, sources []string, folderPrefix string) (map[string]string, error) {
	sourceToKey := make(map[string]string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	// Limit concurrency
	semaphore := make(chan struct{}, 5)

	for i, src := range sources {
		if src == "" {
			continue
		}
		wg.Add(1)
		go func(i int, src string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			// Generate S3 Key
			filename := filepath.Base(src)
			if strings.Contains(filename, "?") {
				filename = strings.Split(filename, "?")[0]
			}
			if filename == "" || len(filename) > 255 {
				filename = fmt.Sprintf("image_%d.jpg", i)
			}
			// ensure unique names
			filename = fmt.Sprintf("%d_%s", time.Now().UnixNano(), filename)
			objectKey := fmt.Sprintf("%s/%s", folderPrefix, filename)

			if err := ingestAndUpload(ctx, src, objectKey); err != nil {
				fmt.Printf("Failed to process %s: %v\n", src, err)
				return
			}

			mu.Lock()
			sourceToKey[src] = objectKey
			mu.Unlock()
		}(i, src)
	}

	wg.Wait()
	return sourceToKey, nil
}

func ingestAndUpload(ctx context.Context, src, objectKey string) error {
	if !strings.HasPrefix(src, "http") {
		data, err := os.ReadFile(src)
		if err != nil {
			return err
		}
		_, err = UploadFileToS3(ctx, bytes.NewReader(data), objectKey, "image/jpeg")
		return err
	}

	req, err := http.NewRequest("GET", src, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (macOS) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = UploadFileToS3(ctx, bytes.NewReader(bodyBytes), objectKey, contentType)
	return err
}
