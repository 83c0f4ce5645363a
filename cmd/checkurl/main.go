package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/PhishGuard/PG-Backend/internal/classifier"
)

// checkurl classifies URLs offline against the on-disk artifacts, without a
// running server or an account. Useful for eyeballing the model.
func main() {
	vectorizerPath := flag.String("vectorizer", "artifacts/vectorizer.json", "vectorizer artifact")
	modelPath := flag.String("model", "artifacts/model.json", "model artifact")
	timeout := flag.Duration("timeout", 5*time.Second, "per-URL classification timeout")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: checkurl [flags] URL [URL...]")
		os.Exit(2)
	}

	vectorizer, err := classifier.LoadVectorizer(*vectorizerPath)
	if err != nil {
		log.Fatal("Failed to load vectorizer artifact: ", err)
	}
	model, err := classifier.LoadModel(*modelPath)
	if err != nil {
		log.Fatal("Failed to load model artifact: ", err)
	}

	gateway := classifier.NewGateway(vectorizer, model, *timeout)

	for _, url := range flag.Args() {
		verdict, err := gateway.Classify(context.Background(), url)
		if err != nil {
			fmt.Printf("%s\tERROR: %v\n", url, err)
			continue
		}
		fmt.Printf("%s\t%s\n", url, verdict)
	}
}
