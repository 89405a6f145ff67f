package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"

	"github.com/cbodonnell/flotilla/pkg/config"
	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/cbodonnell/flotilla/pkg/log"
	"github.com/cbodonnell/flotilla/pkg/processor"
	"github.com/cbodonnell/flotilla/pkg/queue"
	"github.com/cbodonnell/flotilla/pkg/repositories"
	"github.com/cbodonnell/flotilla/pkg/workers"
	"github.com/google/uuid"
)

// line is one request in the replay input.
type line struct {
	Caller     types.PlayerID  `json:"caller"`
	Signer     bool            `json:"signer"`
	SessionKey string          `json:"sessionKey,omitempty"`
	Tag        byte            `json:"tag"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

type summary struct {
	Accepted    int                     `json:"accepted"`
	Rejected    int                     `json:"rejected"`
	Sessions    []*types.GameSession    `json:"sessions"`
	Matchmaking *types.MatchmakingState `json:"matchmaking,omitempty"`
}

func main() {
	configFile := flag.String("config", "", "Path to a JSON config file")
	input := flag.String("input", "-", "Newline-delimited JSON requests, - for stdin")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	databaseURL := flag.String("database-url", "", "Database URL, overrides the config file")
	flag.Parse()

	if err := config.Load(*configFile); err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		config.Set("logLevel", *logLevel)
	}
	if *databaseURL != "" {
		config.Set("database.url", *databaseURL)
	}
	cfg, err := config.Get()
	if err != nil {
		panic(fmt.Sprintf("Failed to decode config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	// stdout carries the summary
	log.SetDefaultLogger(log.New(os.Stderr, "flotilla", parsedLogLevel))

	ctx := context.Background()

	repository, err := newRepository(ctx, cfg.Database)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(ctx)

	var in io.Reader = os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			panic(fmt.Sprintf("Failed to open input: %v", err))
		}
		defer f.Close()
		in = f
	}

	s, err := replay(ctx, in, repository, cfg.Worker)
	if err != nil {
		panic(fmt.Sprintf("Failed to replay requests: %v", err))
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("Failed to encode summary: %v", err))
	}
	fmt.Println(string(out))
}

func newRepository(ctx context.Context, db config.DatabaseConfig) (repositories.Repository, error) {
	u, err := url.Parse(db.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		log.Info("Using SQLite database %s", u.Host+u.Path)
		return repositories.NewSQLiteRepository(ctx, u.Host+u.Path, db.Migrations)
	case "postgres", "postgresql":
		return repositories.NewPostgresRepository(ctx, u.String())
	case "memory":
		log.Info("Using in-memory database")
		return repositories.NewInMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}

// replay feeds every request in r through the instruction worker, in order,
// and summarizes the records they touched.
func replay(ctx context.Context, r io.Reader, repository repositories.Repository, wc config.WorkerConfig) (*summary, error) {
	requestQueue := queue.NewInMemoryQueue(wc.QueueSize)
	outcomes := make(chan workers.Outcome, requestQueue.Cap())

	worker := workers.NewInstructionWorker(workers.NewInstructionWorkerOptions{
		RequestQueue: requestQueue,
		Processor:    processor.NewProcessor(processor.NewProcessorOptions{Repository: repository}),
		Interval:     wc.Interval,
		Outcomes:     outcomes,
	})

	s := &summary{}
	sessions := make(map[uint64]*types.GameSession)
	collect := func() error {
		if err := worker.Drain(ctx); err != nil {
			return err
		}
		for {
			select {
			case o := <-outcomes:
				if o.Err != nil {
					s.Rejected++
					continue
				}
				s.Accepted++
				if o.Result.Session != nil {
					sessions[o.Result.Session.GameID] = o.Result.Session
				}
				if o.Result.Matchmaking != nil {
					s.Matchmaking = o.Result.Matchmaking
				}
			default:
				return nil
			}
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		req, err := parseLine(scanner.Bytes())
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", n, err)
		}

		if err := requestQueue.Enqueue(req); err != nil {
			if err != queue.ErrQueueFull {
				return nil, fmt.Errorf("line %d: %v", n, err)
			}
			if err := collect(); err != nil {
				return nil, err
			}
			if err := requestQueue.Enqueue(req); err != nil {
				return nil, fmt.Errorf("line %d: %v", n, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %v", err)
	}
	if err := collect(); err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(sessions))
	for id := range sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		s.Sessions = append(s.Sessions, sessions[id])
	}

	return s, nil
}

func parseLine(b []byte) (*processor.Request, error) {
	l := &line{}
	if err := json.Unmarshal(b, l); err != nil {
		return nil, fmt.Errorf("failed to decode request: %v", err)
	}

	req := &processor.Request{
		Caller:   l.Caller,
		IsSigner: l.Signer,
		Data:     append([]byte{l.Tag}, l.Payload...),
	}
	if l.SessionKey != "" {
		key, err := uuid.Parse(l.SessionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse session key: %v", err)
		}
		req.SessionKey = key
	}

	return req, nil
}
