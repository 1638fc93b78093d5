package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/asciitype/pkg/errors"
	"github.com/matzehuels/asciitype/pkg/fontkit"
	"github.com/matzehuels/asciitype/pkg/textart"
)

// maxBodyBytes caps the request body; render requests are tiny.
const maxBodyBytes = 1 << 20

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// fontInfo describes one builtin font family.
type fontInfo struct {
	Family string          `json:"family"`
	Styles []fontkit.Style `json:"styles"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleRender renders the posted options and returns the art as text/plain.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts textart.Options
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&opts); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	opts.Logger = s.logger

	art, err := textart.Render(opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(art))
}

// handleFonts lists the builtin font families and their styles.
func (s *Server) handleFonts(w http.ResponseWriter, r *http.Request) {
	families := fontkit.Builtin()
	infos := make([]fontInfo, 0, len(families))
	for _, family := range families {
		infos = append(infos, fontInfo{
			Family: family,
			Styles: fontkit.BuiltinStyles(family),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		s.logger.Error("encode fonts response", "error", err)
	}
}

// writeError maps structured error codes to HTTP status codes and writes the
// JSON error envelope.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidFill,
		errors.ErrCodeInvalidMargin, errors.ErrCodeInvalidSize:
		status = http.StatusBadRequest
	case errors.ErrCodeFontNotFound, errors.ErrCodeFontInvalid:
		status = http.StatusUnprocessableEntity
	}

	resp := errorResponse{Error: errorBody{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	}}
	if resp.Error.Code == "" {
		resp.Error.Code = string(errors.ErrCodeInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
