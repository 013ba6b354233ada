package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/raywall/tenant-auth-service/pkg/bootstrap"
)

// Injetável para testes
var lambdaStarter = lambda.Start

func main() {
	h, err := bootstrap.New(context.Background())
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	lambdaStarter(h.Login)
}
