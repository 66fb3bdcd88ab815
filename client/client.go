package main

import (
	"bufio"
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/sync/errgroup"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string        `env:"CHAT_SERVER_ADDR,default=localhost:12345"`
	DialTimeout   time.Duration `env:"CHAT_DIAL_TIMEOUT,default=5s"`
	LogLevel      string        `env:"LOG_LEVEL,default=WARN"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run connects to the chat server and wires the terminal to the socket
// until either side hangs up.
func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialer := net.Dialer{Timeout: config.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", config.ServerAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()
	log.Info("Connected", "address", config.ServerAddress)

	if err := pump(ctx, conn, os.Stdin, os.Stdout); err != nil {
		if ctx.Err() != nil {
			return exitOK, nil
		}
		return exitRuntime, err
	}
	return exitOK, nil
}

// pump copies input lines to the server and server lines to output.
// It returns nil when the server closes the connection, including after /bye.
func pump(ctx context.Context, conn net.Conn, input io.Reader, output io.Writer) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			if _, err := fmt.Fprintln(output, scanner.Text()); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil && gctx.Err() == nil {
			return fmt.Errorf("read from server: %w", err)
		}
		// io.EOF cancels gctx so the input goroutine stops waiting on stdin
		_ = conn.Close()
		return io.EOF
	})

	g.Go(func() error {
		lines := make(chan string)
		go func() {
			defer close(lines)
			scanner := bufio.NewScanner(input)
			for scanner.Scan() {
				select {
				case lines <- scanner.Text():
				case <-gctx.Done():
					return
				}
			}
		}()
		for {
			select {
			case <-gctx.Done():
				_ = conn.Close()
				return nil
			case line, ok := <-lines:
				if !ok {
					// end of input: say goodbye and let the reader drain
					_, _ = fmt.Fprintln(conn, "/bye")
					return nil
				}
				if _, err := fmt.Fprintln(conn, line); err != nil {
					return fmt.Errorf("write to server: %w", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !goerrors.Is(err, io.EOF) {
		return err
	}
	return nil
}
