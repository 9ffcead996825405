package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"tableflip.dev/tempo/pkg/board"
	"tableflip.dev/tempo/pkg/server"
	"tableflip.dev/tempo/pkg/store"
)

// Serve runs the HTTP API over the board. Store writes from other
// processes are picked up through the persistence watch so the served
// snapshot stays current.
type Serve struct {
	Addr     string
	BasePath string

	Persistence store.Persistence
}

func (n *Serve) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not serve, no persistence")
	}
	b := board.New(n.Persistence)

	handler, err := server.New(server.Config{Board: b, BasePath: n.BasePath})
	if err != nil {
		return err
	}

	watch, err := n.Persistence.Watch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store watch unavailable: %v\n", err)
	} else {
		go func() {
			for range watch {
				b.Reload()
			}
		}()
	}

	srv := &http.Server{Addr: n.Addr, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	fmt.Printf("serving on %s%s\n", n.Addr, n.BasePath)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
