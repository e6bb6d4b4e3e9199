package handler

import (
	"log"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"intake-engine/internal/backend"
	"intake-engine/internal/mapper"
	"intake-engine/internal/model"
	"intake-engine/internal/orchestrator"
	"intake-engine/internal/session"
)

// Handler routes the session API. fasthttp ships no router; paths are matched
// by hand.
type Handler struct {
	store   *session.Store
	backend backend.Service
	orch    *orchestrator.Orchestrator
}

func New(store *session.Store, svc backend.Service, orch *orchestrator.Orchestrator) *Handler {
	return &Handler{store: store, backend: svc, orch: orch}
}

func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/healthz" && method == fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})

	case path == "/api/v1/sessions" && method == fasthttp.MethodPost:
		h.startSession(ctx)

	case strings.HasPrefix(path, "/api/v1/sessions/"):
		h.routeSession(ctx, strings.TrimPrefix(path, "/api/v1/sessions/"), method)

	case strings.HasPrefix(path, "/api/v1/clients/") && strings.HasSuffix(path, "/liabilities") && method == fasthttp.MethodPost:
		clientID := strings.TrimSuffix(strings.TrimPrefix(path, "/api/v1/clients/"), "/liabilities")
		h.createLiability(ctx, clientID)

	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (h *Handler) routeSession(ctx *fasthttp.RequestCtx, rest, method string) {
	parts := strings.Split(rest, "/")
	sess, ok := h.store.Get(parts[0])
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "unknown session")
		return
	}

	switch {
	case len(parts) == 1 && method == fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, sessionResponse(sess))
	case len(parts) == 1 && method == fasthttp.MethodDelete:
		h.store.Delete(sess.ID)
		ctx.SetStatusCode(fasthttp.StatusNoContent)
	case len(parts) == 2 && parts[1] == "field" && method == fasthttp.MethodPut:
		h.applyField(ctx, sess)
	case len(parts) == 2 && parts[1] == "rows" && method == fasthttp.MethodPost:
		h.addRow(ctx, sess)
	case len(parts) == 2 && parts[1] == "submit" && method == fasthttp.MethodPost:
		h.submit(ctx, sess)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (h *Handler) startSession(ctx *fasthttp.RequestCtx) {
	var req model.StartSessionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !req.Mode.Valid() {
		writeError(ctx, fasthttp.StatusBadRequest, "mode must be create, edit or view")
		return
	}

	var doc map[string]any
	switch req.Mode {
	case model.ModeCreate:
		doc = mapper.NewFormDoc()
	default:
		if req.ClientID == "" {
			writeError(ctx, fasthttp.StatusBadRequest, "client_id is required for "+string(req.Mode)+" mode")
			return
		}
		rec, err := h.backend.FetchClient(ctx, req.ClientID)
		if err != nil {
			log.Printf("load client %s failed: %v", req.ClientID, err)
			writeError(ctx, fasthttp.StatusBadGateway, err.Error())
			return
		}
		doc = mapper.ClientFromBackend(rec)
	}

	sess := session.New(req.Mode, req.ClientID, doc)
	h.store.Put(sess)
	writeJSON(ctx, fasthttp.StatusCreated, sessionResponse(sess))
}

func (h *Handler) applyField(ctx *fasthttp.RequestCtx, sess *session.Session) {
	var req model.FieldUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var value any
	if len(req.Value) > 0 {
		if err := json.Unmarshal(req.Value, &value); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "invalid field value: "+err.Error())
			return
		}
	}

	if err := sess.Apply(req.Path, value); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, sessionResponse(sess))
}

func (h *Handler) addRow(ctx *fasthttp.RequestCtx, sess *session.Session) {
	var req model.AddRowRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := sess.AddRow(req.Collection, req.Person); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, sessionResponse(sess))
}

func (h *Handler) submit(ctx *fasthttp.RequestCtx, sess *session.Session) {
	res := h.orch.Submit(ctx, sess)

	if res.Err == orchestrator.ErrReadOnlySession {
		writeError(ctx, fasthttp.StatusConflict, res.Err.Error())
		return
	}

	resp := model.SubmitResponse{
		Accepted:         res.Accepted,
		Outcome:          res.Outcome,
		ClientID:         res.ClientID,
		NavigateBack:     res.NavigateBack,
		ValidationErrors: res.ValidationErrors,
		FirstErrorPath:   res.FirstErrorPath,
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// createLiability registers one liability outside the main save flow. The
// row's derived escrow total is recomputed before send so it can never drift
// from taxes and hoi.
func (h *Handler) createLiability(ctx *fasthttp.RequestCtx, clientID string) {
	var row map[string]any
	if err := json.Unmarshal(ctx.PostBody(), &row); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if mapper.IsBlankLiability(row) {
		writeError(ctx, fasthttp.StatusBadRequest, "liability row is empty")
		return
	}
	row["total_esc"] = mapper.TotalEsc(row["taxes"], row["hoi"])

	if err := h.backend.CreateLiability(ctx, clientID, row); err != nil {
		writeError(ctx, fasthttp.StatusBadGateway, err.Error())
		return
	}
	ctx.SetStatusCode(fasthttp.StatusCreated)
}

func sessionResponse(sess *session.Session) model.SessionResponse {
	return model.SessionResponse{
		SessionID: sess.ID,
		Mode:      sess.Mode,
		ClientID:  sess.ClientID,
		Document:  sess.Document(),
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
