package api

import (
	"encoding/json"
	"errors"
	"net/http"

	encryptservice "github.com/Minby93/EncryptService"
)

// -----------------------------------------------------------------------------

type cipherRequest struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}

type cipherResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// -----------------------------------------------------------------------------

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("EncryptService API Server"))
}

func (s *Server) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	s.logger.Debug("encrypt request", "message_len", len(req.Message))

	ciphertext, err := s.svc.EncryptText(req.Message, req.Key)
	if err != nil {
		s.writeServiceError(w, "encrypt", err)
		return
	}
	writeJSON(w, http.StatusOK, cipherResponse{Message: ciphertext})
}

func (s *Server) handleDecrypt(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	s.logger.Debug("decrypt request", "message_len", len(req.Message))

	plaintext, err := s.svc.DecryptText(req.Message, req.Key)
	if err != nil {
		s.writeServiceError(w, "decrypt", err)
		return
	}
	writeJSON(w, http.StatusOK, cipherResponse{Message: plaintext})
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (cipherRequest, bool) {
	var req cipherRequest

	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	err := json.NewDecoder(body).Decode(&req)
	if err != nil {
		var maxBytesErr *http.MaxBytesError

		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return cipherRequest{}, false
	}
	return req, true
}

func (s *Server) writeServiceError(w http.ResponseWriter, op string, err error) {
	if !encryptservice.IsClientError(err) {
		s.logger.Error("cipher operation failed", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Debug("rejected request", "op", op, "error", err)

	switch {
	case errors.Is(err, encryptservice.ErrMissingMessage),
		errors.Is(err, encryptservice.ErrMissingKey),
		errors.Is(err, encryptservice.ErrInvalidKeyLength):
		writeError(w, http.StatusBadRequest, "message and key (32 bytes) are required")
	case errors.Is(err, encryptservice.ErrInvalidHexEncoding):
		writeError(w, http.StatusBadRequest, encryptservice.ErrInvalidHexEncoding.Error())
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
