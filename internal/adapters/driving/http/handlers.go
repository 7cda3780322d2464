package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driving"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Code    string `json:"code" example:"invalid_params"`
	Message string `json:"message" example:"required parameter missing"`
	Status  int    `json:"status" example:"400"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// ImportResponse is returned after a successful file import
// @Description Created attachment reference
type ImportResponse struct {
	ID int64 `json:"id" example:"42"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks database and cache connections)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A backing store is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, "not_ready", http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, "not_ready", http.StatusServiceUnavailable, "cache unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Setup endpoint (no auth required, one-time use)

// handleSetup godoc
// @Summary      Initial setup
// @Description  Create the initial admin user. This endpoint can only be called once when no users exist.
// @Tags         Setup
// @Accept       json
// @Produce      json
// @Param        request  body      driving.SetupRequest  true  "Admin user details"
// @Success      201      {object}  driving.SetupResponse
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      403      {object}  ErrorResponse  "Setup already complete"
// @Failure      500      {object}  ErrorResponse  "Setup failed"
// @Router       /setup [post]
func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req driving.SetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid_params", http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Setup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, "invalid_params", http.StatusBadRequest, "email, password, and name are required")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, "setup_complete", http.StatusForbidden, "setup already complete")
		default:
			writeError(w, "setup_failed", http.StatusInternalServerError, "setup failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Auth endpoints

// handleLogin godoc
// @Summary      User login
// @Description  Authenticate with email and password to receive a JWT token and a session nonce
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Login credentials"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid credentials or account disabled"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid_params", http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Authenticate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, "invalid_credentials", http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, "account_disabled", http.StatusUnauthorized, "account disabled")
		default:
			writeError(w, "auth_failed", http.StatusInternalServerError, "authentication failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleLogout godoc
// @Summary      Logout user
// @Description  Invalidate the current session token
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatusResponse
// @Router       /auth/logout [post]
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	_ = s.authService.Logout(r.Context(), token)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Picker endpoints

// handlePickerConfig godoc
// @Summary      Picker bootstrap configuration
// @Description  Returns the configuration the Mediaflow file selector widget needs to render. An empty access_token signals the integration is not configured.
// @Tags         Picker
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  driving.PickerConfig
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /picker/config [get]
func (s *Server) handlePickerConfig(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, "unauthorized", http.StatusUnauthorized, "unauthorized")
		return
	}

	cfg, err := s.pickerService.Config(r.Context(), authCtx)
	if err != nil {
		writeError(w, "picker_config_failed", http.StatusInternalServerError, "failed to build picker configuration")
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

// Media endpoints

// handleImportFile godoc
// @Summary      Import a Mediaflow file
// @Description  Downloads the file at the given URL and registers it as a local attachment. Upstream failures are relayed with their original status.
// @Tags         Media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Csrf-Nonce  header    string                 true  "Session nonce"
// @Param        request       body      driving.ImportRequest  true  "File to import"
// @Success      201           {object}  ImportResponse
// @Failure      400           {object}  ErrorResponse  "Invalid parameters or sideload failure"
// @Failure      401           {object}  ErrorResponse  "Unauthorized"
// @Failure      500           {object}  ErrorResponse  "Internal server error"
// @Router       /files [post]
func (s *Server) handleImportFile(w http.ResponseWriter, r *http.Request) {
	var req driving.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid_params", http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := s.importService.Import(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "import_failed", "file import failed")
		return
	}

	writeJSON(w, http.StatusCreated, ImportResponse{ID: id})
}

// handleUsagePing godoc
// @Summary      Report file usage
// @Description  Forwards a file selection or removal event to Mediaflow and relays the vendor response verbatim.
// @Tags         Media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Csrf-Nonce  header    string                true  "Session nonce"
// @Param        request       body      driving.UsageRequest  true  "Usage event"
// @Success      200           {string}  string         "Vendor response body"
// @Failure      400           {object}  ErrorResponse  "Missing parameters"
// @Failure      401           {object}  ErrorResponse  "No access token obtainable"
// @Failure      500           {object}  ErrorResponse  "Internal server error"
// @Router       /usages [post]
func (s *Server) handleUsagePing(w http.ResponseWriter, r *http.Request) {
	var req driving.UsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid_params", http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.usageService.Ping(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "usage_failed", "usage report failed")
		return
	}

	// Relay the vendor response verbatim, status included
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.Status)
	_, _ = w.Write(result.Body)
}

// Settings endpoints

// handleGetSettings godoc
// @Summary      Get Mediaflow settings
// @Description  Returns the integration settings with secrets masked (admin only)
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  driving.SettingsView
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      403  {object}  ErrorResponse  "Forbidden - admin only"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /settings [get]
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	view, err := s.settingsService.Get(r.Context())
	if err != nil {
		writeError(w, "settings_failed", http.StatusInternalServerError, "failed to load settings")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// handleUpdateSettings godoc
// @Summary      Update Mediaflow settings
// @Description  Persists changed settings fields and invalidates the cached access token (admin only). Rejected when MEDIAFLOW_* environment variables manage the settings.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.UpdateSettingsRequest  true  "Fields to update"
// @Success      200      {object}  driving.SettingsView
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      403      {object}  ErrorResponse  "Forbidden - admin only"
// @Failure      409      {object}  ErrorResponse  "Settings managed by environment"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /settings [put]
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, "unauthorized", http.StatusUnauthorized, "unauthorized")
		return
	}

	var req driving.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid_params", http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := s.settingsService.Update(r.Context(), authCtx.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEnvManaged):
			writeError(w, "env_managed", http.StatusConflict, "settings are managed by environment variables")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, "invalid_params", http.StatusBadRequest, "invalid settings")
		default:
			writeError(w, "settings_failed", http.StatusInternalServerError, "failed to save settings")
		}
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Response helpers

// writeServiceError maps service errors to API responses. Upstream errors
// keep their code and status; domain sentinels map to the documented codes;
// anything else becomes a 500 with the given fallback.
func writeServiceError(w http.ResponseWriter, err error, fallbackCode, fallbackMsg string) {
	if ue, ok := domain.AsUpstreamError(err); ok {
		writeError(w, ue.Code, ue.Status, ue.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, "invalid_params", http.StatusBadRequest, "required parameter missing")
	case errors.Is(err, domain.ErrNoAccessToken):
		writeError(w, "invalid_credentials", http.StatusUnauthorized, "no Mediaflow access token available")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, "not_found", http.StatusNotFound, "not found")
	default:
		writeError(w, fallbackCode, http.StatusInternalServerError, fallbackMsg)
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code string, status int, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message, Status: status})
}
