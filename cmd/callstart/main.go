// Function callstart receives an Amazon Connect contact flow event when a
// call starts and hands over to package handler.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/whispa/connect-lambda/internal/config"
	"github.com/whispa/connect-lambda/internal/handler"
	"github.com/whispa/connect-lambda/internal/notifier"
)

var h *handler.Handler

func init() {
	h = handler.New(notifier.New(config.FromEnv()))
}

func main() {
	lambda.Start(h.Handle)
}
