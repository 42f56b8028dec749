package timetable

import (
	"net/http/cookiejar"
	"time"
	"vttimetable/lib/restyutil"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseUrl is the production timetable endpoint. Searches POST
// form data to it; the metadata listings GET it bare.
const DefaultBaseUrl = "https://apps.es.vt.edu/ssb/HZSKVTSC.P_ProcRequest"

// Client talks to the timetable of classes. Every method performs a
// single blocking round trip and holds no state between calls, so one
// client may be shared freely.
type Client struct {
	http    *resty.Client
	baseUrl string
}

type ClientOptions struct {
	// BaseUrl overrides DefaultBaseUrl, mainly for tests.
	BaseUrl string
	// Timeout defaults to 30 seconds.
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(timeout)

	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return &Client{http: client, baseUrl: baseUrl}, nil
}
