package campaign

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"

	"github.com/prognoshealth/campaignfn/config"
	"github.com/prognoshealth/campaignfn/gemini"
	"github.com/prognoshealth/campaignfn/lambdautils"
	"github.com/prognoshealth/campaignfn/proxy"
)

// TextGenerator turns a prompt into completion text. *gemini.Client
// implements it.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Handler is the generate-campaign function. It holds no per-request state and
// may serve concurrent invocations.
type Handler struct {
	cfg       *config.Config
	generator TextGenerator
	logger    *slog.Logger
	router    *proxy.Router
}

// NewHandler returns a Handler answering POST requests on any path.
func NewHandler(cfg *config.Config, generator TextGenerator, logger *slog.Logger) (*Handler, error) {
	h := &Handler{
		cfg:       cfg,
		generator: generator,
		logger:    logger,
	}

	router := &proxy.Router{}
	router.POST(".*", h.generate)
	router.AddCatchAllHandler(h.methodNotAllowed)
	router.AddErrorHandler(h.handleError)

	if !router.Valid() {
		return nil, router.BuildErrors()
	}

	h.router = router
	return h, nil
}

// Handle serves one invocation. Every failure is turned into a response, so
// the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
	return h.router.Route(ctx, request)
}

func (h *Handler) methodNotAllowed(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{}, errMethodNotAllowed(request.RequestContext.HTTP.Method)
}

func (h *Handler) generate(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	ctx := rctx.Context

	if !h.cfg.HasAPIKey() {
		return events.APIGatewayProxyResponse{}, errNotConfigured()
	}

	req, err := parseRequest(rctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	prompt, err := BuildPrompt(req.SeedContent)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	text, err := h.generator.GenerateText(ctx, prompt)
	if err != nil {
		var serr *gemini.StatusError
		if errors.As(err, &serr) {
			return events.APIGatewayProxyResponse{}, errUpstream(serr.StatusCode, serr.Body, err)
		}
		if errors.Is(err, gemini.ErrMalformedResponse) {
			return events.APIGatewayProxyResponse{}, errMalformedUpstream(err)
		}
		return events.APIGatewayProxyResponse{}, err
	}

	campaign, err := ParseCampaign(text)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errMalformedUpstream(err)
	}

	lambdautils.ContextLogger(ctx, h.logger).Info("generated campaign",
		"posts", len(campaign),
		"platforms", campaign.Platforms(),
	)

	return proxy.JSON(http.StatusOK, campaign)
}

func parseRequest(rctx *proxy.RouteContext) (*GenerateRequest, error) {
	body, err := rctx.Body()
	if err != nil {
		return nil, errInvalidInput(msgInvalidBody, err)
	}

	req := new(GenerateRequest)
	if err := json.Unmarshal(body, req); err != nil {
		return nil, errInvalidInput(msgInvalidBody, errors.Wrap(err, "failed parsing request body"))
	}

	if req.SeedContent == "" {
		return nil, errInvalidInput(msgSeedRequired, errors.New("seedContent missing or empty"))
	}

	return req, nil
}

// handleError is the outermost boundary: it logs every failure and maps it to
// its response.
func (h *Handler) handleError(ctx context.Context, request events.APIGatewayV2HTTPRequest, err error) (events.APIGatewayProxyResponse, error) {
	e := AsError(err)
	status := e.StatusCode()

	logger := lambdautils.ContextLogger(ctx, h.logger).With(
		"kind", e.Kind.String(),
		"status", status,
		"method", request.RequestContext.HTTP.Method,
		"path", request.RawPath,
	)

	switch e.Kind {
	case KindMethodNotAllowed, KindInvalidInput:
		logger.Warn("rejected request", "error", e)
	default:
		logger.Error("request failed", "error", e)
	}

	response := proxy.Error(status, e.PublicMessage())
	if e.Kind == KindMethodNotAllowed {
		response.Headers["Allow"] = strings.Join(h.router.Allowed(request.RawPath), ", ")
	}

	return response, nil
}
