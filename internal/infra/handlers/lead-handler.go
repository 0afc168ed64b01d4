package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"lead-dispatcher/internal/domain/apperrors"
	"lead-dispatcher/internal/domain/dto"
	Iservices "lead-dispatcher/internal/domain/interfaces/services"
	"lead-dispatcher/internal/infra/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

// MaxBodyBytes caps the POST body read from the caller.
const MaxBodyBytes = 1 << 20

const (
	msgVerificationFailed  = "Verification failed"
	msgInvalidSignature    = "Invalid signature"
	msgPayloadTooLarge     = "Payload too large."
	msgInternalError       = "Internal Server Error."
	msgMisconfigured       = "Server configuration error."
	msgMetaSuccess         = "Meta lead processed successfully!"
	msgMetaMissingLeadID   = "leadgen_id missing"
	msgMetaSendFailed      = "Failed to send Meta lead to main Telegram."
	msgLandingSuccess      = "Landing page lead processed successfully!"
	msgLandingMissingField = "Name and phone are required."
	msgLandingSendFailed   = "Failed to send landing page lead to Telegram."
)

type LeadHandlers struct {
	Logger      *logger.Logger
	VerifyToken string
	AppSecret   string
	LeadService Iservices.ILeadService
}

func NewLeadHandlers(logger *logger.Logger, verifyToken, appSecret string, leadService Iservices.ILeadService) *LeadHandlers {
	return &LeadHandlers{Logger: logger, VerifyToken: verifyToken, AppSecret: appSecret, LeadService: leadService}
}

// SendMessage is the single lead endpoint.
//
//   - OPTIONS: CORS preflight, 200 with an empty body.
//   - GET: Meta webhook verification handshake.
//   - POST: a Meta leadgen notification (body.object == "page") or a landing
//     page form submission.
//   - Anything else: 405.
//
// Every failure is answered with a JSON {"message": ...} body.
func (lh *LeadHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		lh.handleVerification(w, r)
	case http.MethodPost:
		lh.handleLead(w, r)
	default:
		lh.Logger.ForContext(r.Context()).Warn(fmt.Sprintf("%v: %s", apperrors.ErrMethodNotAllowed, r.Method))
		writeJSON(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s Not Allowed", r.Method))
	}
}

// handleVerification answers Meta's subscription handshake. The challenge is
// echoed only when hub.mode is "subscribe" and hub.verify_token matches.
func (lh *LeadHandlers) handleVerification(w http.ResponseWriter, r *http.Request) {
	log := lh.Logger.ForContext(r.Context())
	query := r.URL.Query()
	mode := query.Get("hub.mode")
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if mode == "subscribe" && lh.VerifyToken != "" && token == lh.VerifyToken {
		log.Info("Webhook verified successfully!")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(challenge))
		return
	}

	log.Error("Webhook verification failed.", logrus.Fields{"mode": mode})
	writeJSON(w, http.StatusForbidden, msgVerificationFailed)
}

func (lh *LeadHandlers) handleLead(w http.ResponseWriter, r *http.Request) {
	log := lh.Logger.ForContext(r.Context())

	defer func() {
		if rec := recover(); rec != nil {
			log.Error(fmt.Sprintf("Recovered from panic while processing POST request: %v", rec))
			writeJSON(w, http.StatusInternalServerError, msgInternalError)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	defer r.Body.Close()
	if err != nil {
		log.Error(fmt.Sprintf("Failed to read request body: %v", err))
		writeJSON(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if len(body) > MaxBodyBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
		return
	}

	log.Debug(fmt.Sprintf("=== RAW BODY === %s", string(body)))

	kind, event, err := ClassifyRequest(r.Method, body)
	if err != nil {
		log.Error(fmt.Sprintf("Error processing POST request: %v", err))
		writeJSON(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	// Outbound sends are not cancelled when the caller disconnects.
	ctx := context.WithoutCancel(r.Context())

	switch kind {
	case RequestMetaLead:
		if lh.AppSecret != "" && !validSignature(body, r.Header.Get(signatureHeader), lh.AppSecret) {
			log.Warn(apperrors.ErrInvalidSignature.Error())
			writeJSON(w, http.StatusForbidden, msgInvalidSignature)
			return
		}
		lh.respondMeta(w, log, lh.LeadService.ProcessMetaLead(ctx, *event.Meta))
	case RequestLandingLead:
		lh.respondLanding(w, log, lh.LeadService.ProcessLandingLead(ctx, *event.Landing))
	}
}

func (lh *LeadHandlers) respondMeta(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, msgMetaSuccess)
	case errors.Is(err, apperrors.ErrMissingLeadID):
		log.Error("No leadgen_id in webhook payload.")
		writeJSON(w, http.StatusBadRequest, msgMetaMissingLeadID)
	case errors.Is(err, apperrors.ErrServerMisconfiguration):
		log.Error(err.Error())
		writeJSON(w, http.StatusInternalServerError, msgMisconfigured)
	case errors.Is(err, apperrors.ErrUpstreamSend):
		writeJSON(w, http.StatusInternalServerError, msgMetaSendFailed)
	default:
		log.Error(fmt.Sprintf("Error processing Meta lead: %v", err))
		writeJSON(w, http.StatusInternalServerError, msgInternalError)
	}
}

func (lh *LeadHandlers) respondLanding(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, msgLandingSuccess)
	case errors.Is(err, apperrors.ErrMissingRequiredField):
		writeJSON(w, http.StatusBadRequest, msgLandingMissingField)
	case errors.Is(err, apperrors.ErrServerMisconfiguration):
		log.Error(err.Error())
		writeJSON(w, http.StatusInternalServerError, msgMisconfigured)
	case errors.Is(err, apperrors.ErrUpstreamSend):
		writeJSON(w, http.StatusInternalServerError, msgLandingSendFailed)
	default:
		log.Error(fmt.Sprintf("Error processing landing lead: %v", err))
		writeJSON(w, http.StatusInternalServerError, msgInternalError)
	}
}

func writeJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.MessageResponse{Message: message})
}
