package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

const maxCleanupRetries = 3
const cleanupRetryDelay = 2 * time.Minute

// CleanupExpiredFile removes the file if it is older than the TTL
func CleanupExpiredFile(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %v", err)
	}

	if time.Since(info.ModTime()) > ttl {
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("error deleting expired file: %v", err)
		}
		log.Printf("expired export %s deleted", filePath)
	}
	return nil
}

// CleanupExpiredExports sweeps the export directory and removes spreadsheets
// older than the TTL. Downloads are one-shot, so anything left behind is junk.
func CleanupExpiredExports(ttl time.Duration) error {
	files, err := os.ReadDir(ExportDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading export directory: %v", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if err := CleanupExpiredFile(filepath.Join(ExportDir, file.Name()), ttl); err != nil {
			log.Println("error cleaning up export:", err)
		}
	}
	return nil
}

// RunScheduledCleanup sweeps old export files daily at 1 AM with retries.
// Returns the scheduler so the caller can stop it on shutdown.
func RunScheduledCleanup() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled export cleanup...")

		for attempt := 1; attempt <= maxCleanupRetries; attempt++ {
			err := CleanupExpiredExports(24 * time.Hour)
			if err == nil {
				log.Println("export cleanup successful")
				return
			}
			log.Printf("export cleanup attempt %d failed: %v", attempt, err)
			time.Sleep(cleanupRetryDelay)
		}

		log.Printf("export cleanup failed after %d retries", maxCleanupRetries)
	})

	c.Start()
	return c
}
