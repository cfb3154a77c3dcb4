package lightning

import (
	"context"
	"encoding/json"
	"net/url"

	clienthttp "peerswap-api/internal/client/http"

	"github.com/pkg/errors"
)

// RuneHeader carries the clnrest access rune.
const RuneHeader = "Rune"

// RESTTransport calls the node through the clnrest plugin: every method is
// exposed as POST {baseURL}/v1/{method} with the params as JSON body.
type RESTTransport struct {
	client *clienthttp.HTTPClient
}

// NewRESTTransport returns a transport for the clnrest server at baseURL,
// authenticating with accessRune.
func NewRESTTransport(baseURL, accessRune string, opts ...clienthttp.ClientOption) *RESTTransport {
	options := append([]clienthttp.ClientOption{
		clienthttp.WithBaseURL(baseURL),
		clienthttp.WithDefaultHeader(RuneHeader, accessRune),
	}, opts...)

	return &RESTTransport{
		client: clienthttp.NewHTTPClient(options...),
	}
}

// Call implements Caller.
func (t *RESTTransport) Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	resp, err := t.client.Post(ctx, "/v1/"+url.PathEscape(method), positional(params))
	if err != nil {
		var httpErr *clienthttp.HTTPError
		if errors.As(err, &httpErr) {
			if rpcErr := decodeRPCError(httpErr.Body); rpcErr != nil {
				return nil, rpcErr
			}
		}
		return nil, errors.Wrap(err, "clnrest")
	}

	body, err := clienthttp.ReadBody(resp)
	if err != nil {
		return nil, errors.Wrap(err, "read clnrest response")
	}
	if !json.Valid(body) {
		return nil, errors.Errorf("clnrest returned invalid JSON for %s", method)
	}
	return json.RawMessage(body), nil
}

// Close implements Transport. The HTTP client keeps no dedicated connection.
func (t *RESTTransport) Close() error {
	return nil
}

// decodeRPCError accepts both a bare error object and one nested under "error".
func decodeRPCError(body []byte) *RPCError {
	var wrapped struct {
		Error *RPCError `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error != nil && wrapped.Error.Message != "" {
		return wrapped.Error
	}

	var bare RPCError
	if err := json.Unmarshal(body, &bare); err == nil && bare.Message != "" {
		return &bare
	}
	return nil
}
