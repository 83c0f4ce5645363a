package classifier

import (
	"log"

	"github.com/PhishGuard/PG-Backend/internal/config"
)

// DefaultGateway is built once at startup from the on-disk artifacts.
var DefaultGateway *Gateway

// Init loads the vectorizer and model artifacts. Missing or malformed
// artifacts are fatal: the server must not come up without its classifier.
func Init() {
	vectorizer, err := LoadVectorizer(config.App.VectorizerPath)
	if err != nil {
		log.Fatal("Failed to load vectorizer artifact: ", err)
	}

	model, err := LoadModel(config.App.ModelPath)
	if err != nil {
		log.Fatal("Failed to load model artifact: ", err)
	}

	DefaultGateway = NewGateway(vectorizer, model, config.App.ClassifyTimeout)
	log.Printf("Loaded classifier artifacts (%s, %s)", config.App.VectorizerPath, config.App.ModelPath)
}
