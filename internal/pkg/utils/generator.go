package utils

import (
	"caremarket-service/internal/pkg/constvars"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().UTC().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}

func GenerateProfilePhotoObjectName(userID, fileExtension string) string {
	return path.Join(constvars.ProfilePhotoDir, GenerateFileName("photo", userID, fileExtension))
}
