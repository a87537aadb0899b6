package constants

import (
	"os"
	"runtime"
	"strconv"
)

func GetCorpusDir() string {
	path := os.Getenv("CORPUS_PATH")
	if path != "" {
		return path
	}
	return "./corpus"
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

func GetPort() int {
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port > 0 {
		return port
	}
	return 8080
}

// GetMetadataEndpoint is empty unless a local DynamoDB is in use.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

func GetMetadataRegion() string {
	region := os.Getenv("METADATA_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

func GetMetadataTable() string {
	table := os.Getenv("METADATA_TABLE")
	if table != "" {
		return table
	}
	return "chorale-metadata"
}

func MetadataEnabled() bool {
	return os.Getenv("METADATA_TABLE") != "" || os.Getenv("METADATA_ENDPOINT") != ""
}

func GetWorkers() int {
	if n, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// largest request body the server will read, in bytes
const MaxRequestBytes = 4 * 1024 * 1024

// longest score, in beats, the quantizer will slice
const MaxBeats = 1 << 16
