package utils

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ShutdownHandler sets up a signal handler to gracefully shut down the application when an interrupt or termination signal is received.
//
// The provided callback function will be called when the signal is received.
func ShutdownHandler(callback func()) *sync.WaitGroup {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		signalCh := make(chan os.Signal, 1)
		signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

		<-signalCh
		log.Println("Received interrupt signal, shutting down...")

		signal.Stop(signalCh)
		callback()
	}()
	return &wg
}
