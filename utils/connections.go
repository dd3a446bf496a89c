package utils

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	es7 "github.com/elastic/go-elasticsearch/v7"
)

func CreateEsConnection(elasticsearchUrl string, elasticsearchUsername string, elasticsearchPassword string) (*es7.Client, error) {
	var (
		clusterURLs  = []string{elasticsearchUrl}
		retryBackoff = backoff.NewExponentialBackOff()
	)

	cfg := es7.Config{
		Addresses: clusterURLs,
		Username:  elasticsearchUsername,
		Password:  elasticsearchPassword,

		RetryOnStatus: []int{502, 503, 504, 429},

		// Configure the backoff function
		//
		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		},

		// Retry up to 5 attempts
		//
		MaxRetries: 5,
	}

	es7Client, err := es7.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Using ES7 Client Version %s\n", es7.Version)

	return es7Client, nil
}
