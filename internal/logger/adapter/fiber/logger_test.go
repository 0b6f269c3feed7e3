package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/maryjean/suggestion-box/internal/logger/adapter/fiber"

	"github.com/maryjean/suggestion-box/internal/logger"
)

// expectedLoggerJSONFormat implements loggers default json format.
type expectedLoggerJSONFormat struct {
	IP            net.IP    `json:"IP"`
	Status        int       `json:"status"`
	XPerformance  float32   `json:"X-Performance"`
	URI           string    `json:"URI"`
	Method        string    `json:"method"`
	Host          string    `json:"host"`
	XForwardedFor string    `json:"X-Forwarded-For"`
	UserAgent     string    `json:"User-Agent"`
	Time          time.Time `json:"time"`
}

func consoleLogConfig() logger.Log {
	return logger.Log{
		EnableAccessLogToConsole: true,
		Console:                  logger.Console{Enabled: true},
	}
}

func TestNew(t *testing.T) {
	type arguments struct {
		config     adapter.Config
		targetPath string
	}

	type want struct {
		err    error
		output *expectedLoggerJSONFormat
	}

	tests := []struct {
		name string
		args arguments
		want want
	}{
		{
			name: "empty no output at all",
			args: arguments{
				targetPath: "/api/suggestions",
			},
			want: want{
				err:    nil,
				output: nil,
			},
		},
		{
			name: "get endpoint log to console json",
			args: arguments{
				targetPath: "/api/suggestions",
				config: adapter.Config{
					Config: consoleLogConfig(),
				},
			},
			want: want{
				err: nil,
				output: &expectedLoggerJSONFormat{
					IP:     net.ParseIP("0.0.0.0"),
					Status: 200,
					URI:    "/api/suggestions",
					Method: fiber.MethodGet,
					Host:   "example.com",
				},
			},
		},
		{
			name: "unknown path logs 404",
			args: arguments{
				targetPath: "/no/such/path",
				config: adapter.Config{
					Config: consoleLogConfig(),
				},
			},
			want: want{
				err: nil,
				output: &expectedLoggerJSONFormat{
					IP:     net.ParseIP("0.0.0.0"),
					Status: 404,
					URI:    "/no/such/path",
					Method: fiber.MethodGet,
					Host:   "example.com",
				},
			},
		},
		{
			name: "query string is kept in the logged URI",
			args: arguments{
				targetPath: "/api/suggestions?category=food",
				config: adapter.Config{
					Config: consoleLogConfig(),
				},
			},
			want: want{
				err: nil,
				output: &expectedLoggerJSONFormat{
					IP:     net.ParseIP("0.0.0.0"),
					Status: 200,
					URI:    "/api/suggestions?category=food",
					Method: fiber.MethodGet,
					Host:   "example.com",
				},
			},
		},
		{
			name: "multi slash path is logged unnormalized",
			args: arguments{
				targetPath: "//api//suggestions?x=1",
				config: adapter.Config{
					Config: consoleLogConfig(),
				},
			},
			want: want{
				err: nil,
				output: &expectedLoggerJSONFormat{
					IP:     net.ParseIP("0.0.0.0"),
					Status: 404,
					URI:    "//api//suggestions?x=1",
					Method: fiber.MethodGet,
					Host:   "example.com",
				},
			},
		},
		{
			name: "checkalive calls are not logged when disabled",
			args: arguments{
				targetPath: "/checkalive",
				config: adapter.Config{
					Config: logger.Log{
						EnableAccessLogToConsole: true,
						DisableCheckAlive:        true,
						Console:                  logger.Console{Enabled: true},
					},
					CheckAliveURI: "/checkalive",
				},
			},
			want: want{
				err:    nil,
				output: nil,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// use test helper func for testing this config
			output, err := testMiddlewareHelper(t, tt.args.targetPath, tt.args.config)

			// is error as expected
			assert.Equal(t, tt.want.err, err)

			if tt.want.output == nil && output != "" {
				t.Errorf("expected no output, but got output %s", output)
			}

			if tt.want.output != nil && output == "" {
				t.Error("expected output but got no output")
			}

			if tt.want.output != nil && output != "" {
				var decodedOutput expectedLoggerJSONFormat
				err = json.Unmarshal([]byte(output), &decodedOutput)
				if err != nil {
					t.Error(err)
					return
				}

				assert.Equal(t, tt.want.output.Host, decodedOutput.Host)
				assert.Equal(t, tt.want.output.Method, decodedOutput.Method)
				assert.Equal(t, tt.want.output.Status, decodedOutput.Status)
				assert.Equal(t, tt.want.output.IP, decodedOutput.IP)
				assert.Equal(t, tt.want.output.URI, decodedOutput.URI)
			}
		})
	}
}

func TestNew_ConcurrentRequestsKeepOwnTiming(t *testing.T) {
	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(adapter.New(adapter.Config{}))

	app.Get("/slow", func(ctx *fiber.Ctx) error {
		time.Sleep(120 * time.Millisecond)
		return ctx.SendString("slow")
	})
	app.Get("/fast", func(ctx *fiber.Ctx) error {
		return ctx.SendString("fast")
	})

	type result struct {
		resp *http.Response
		err  error
	}

	slow := make(chan result, 1)

	go func() {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/slow", nil), 5000)
		slow <- result{resp: resp, err: err}
	}()

	// let the slow request start, then overlap it with a fast one
	time.Sleep(30 * time.Millisecond)

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fast", nil))
	require.NoError(t, err)

	r := <-slow
	require.NoError(t, r.err)

	elapsed, err := strconv.ParseFloat(r.resp.Header.Get("X-Performance"), 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 0.1, "slow request timing must not be reset by the overlapping fast request")
}

func testMiddlewareHelper(t *testing.T, targetPath string, adapterConfig adapter.Config) (string, error) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	// capture stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	// create new fiber app
	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	// use logger
	app.Use(adapter.New(adapterConfig))

	// minimal endpoints matching the service surface
	app.Get("/api/suggestions", func(ctx *fiber.Ctx) error {
		return ctx.SendString(`{"success":true,"suggestions":[]}`)
	})
	app.Get("/checkalive", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), 100000)
	if err != nil {
		_ = w.Close()
		return "", err
	}

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, err = io.Copy(&buf, r)
		if err != nil {
			return
		}

		outC <- buf.String()
	}()

	// back to normal state
	_ = w.Close()
	os.Stdout = stdout // restoring the real stdout
	os.Stderr = stderr // restoring the real stderr
	out := <-outC

	return out, err
}
