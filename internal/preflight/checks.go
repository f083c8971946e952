package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"moviescout/internal/services/llm"
	"moviescout/internal/tmdb"
)

const (
	tmdbCheckTimeout = 10 * time.Second
	llmCheckTimeout  = 30 * time.Second
	llmPingPrompt    = `Respond with JSON only: {"ok":true}`
)

// GenreLister is the catalog call used to prove TMDB access.
type GenreLister interface {
	MovieGenres(ctx context.Context) ([]tmdb.Genre, error)
}

// CheckTMDB verifies the catalog is reachable and the key is accepted by
// fetching the genre list once.
func CheckTMDB(ctx context.Context, catalog GenreLister) Result {
	const name = "TMDB"
	if catalog == nil {
		return Result{Name: name, Detail: "client not configured"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, tmdbCheckTimeout)
	defer cancel()

	list, err := catalog.MovieGenres(checkCtx)
	if err != nil {
		return Result{Name: name, Detail: summarizeError("catalog", err)}
	}
	if len(list) == 0 {
		return Result{Name: name, Detail: "reachable but returned no genres"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("Reachable (%d genres)", len(list))}
}

// CheckLLM verifies that the language model answers a minimal prompt. It makes
// a single attempt.
func CheckLLM(ctx context.Context, name string, completer llm.Completer) Result {
	if completer == nil {
		return Result{Name: name, Detail: "client not configured"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, llmCheckTimeout)
	defer cancel()

	reply, err := completer.Complete(checkCtx, llmPingPrompt)
	if err != nil {
		return Result{Name: name, Detail: summarizeError("LLM API", err)}
	}
	var parsed struct {
		OK bool `json:"ok"`
	}
	if err := llm.DecodeLLMJSON(llm.FirstCodeBlock(reply), &parsed); err != nil || !parsed.OK {
		return Result{Name: name, Detail: "reachable but reply was not usable JSON: " + llm.SummarizePayload(reply)}
	}
	return Result{Name: name, Passed: true, Detail: "API reachable"}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func summarizeError(service string, err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("check timed out (%s unresponsive)", service)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Sprintf("check timed out (%s unreachable)", service)
	}
	return err.Error()
}
