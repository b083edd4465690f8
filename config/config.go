package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI           string
	Port               string
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	GeminiAPIKey       string
	ClipEndpoint       string
	ColorAPIEndpoint   string
	AWSRegion          string
	AWSBucketName      string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	JWTSecret = os.Getenv("JWT_SECRET")

	GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	GoogleClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	GoogleRedirectURL = os.Getenv("GOOGLE_REDIRECT_URL")
	if GoogleRedirectURL == "" {
		GoogleRedirectURL = "http://localhost:8080/auth/google/callback"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	// CLIP inference service that turns images and text into embeddings
	ClipEndpoint = os.Getenv("CLIP_ENDPOINT")
	if ClipEndpoint == "" {
		ClipEndpoint = "http://localhost:8090"
	}

	// Color scheme service used by the palette compatibility strategy.
	// Leave empty to rely on the built-in static color tables only.
	ColorAPIEndpoint = os.Getenv("COLOR_API_ENDPOINT")

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "ap-south-1"
	}

	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
	if AWSBucketName == "" {
		AWSBucketName = "stylematch-images"
	}
}
