package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"github.com/osse101/GatchaLife_Go/internal/asyncjob"
	"github.com/osse101/GatchaLife_Go/internal/logger"
)

// CallbackRequest is the result message posted by the workflow engine
type CallbackRequest struct {
	JobID  string          `json:"job_id" validate:"required,max=64"`
	Status string          `json:"status" validate:"callbackstatus"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty" validate:"max=4096"`
}

// CallbackHandler receives async job results
type CallbackHandler struct {
	jobSvc asyncjob.Service
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(jobSvc asyncjob.Service) *CallbackHandler {
	return &CallbackHandler{jobSvc: jobSvc}
}

// HandleCallback applies a workflow result to its job
// @Summary Workflow callback
// @Description Accepts a JSON body or a multipart form with an optional uploaded file
// @Tags workflow
// @Accept json,mpfd
// @Produce json
// @Param request body CallbackRequest true "Callback"
// @Success 200 {object} asyncjob.CallbackResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "No handler for job type"
// @Router /workflow/callback/ [post]
func (h *CallbackHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, MaxCallbackBytes)

	var (
		req  CallbackRequest
		file *asyncjob.File
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		var err error
		req, file, err = parseMultipartCallback(r)
		if err != nil {
			log.Warn("Failed to parse multipart callback", "error", err)
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(w, http.StatusRequestEntityTooLarge, ErrMsgCallbackTooLarge)
				return
			}
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCallback)
			return
		}
		if err := GetValidator().ValidateStruct(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}
	} else if err := DecodeAndValidateRequest(r, w, &req, OpCallback); err != nil {
		return
	}

	log.Info("Callback received", "job_id", req.JobID, "status", req.Status, "has_file", file != nil)

	result, err := h.jobSvc.HandleCallback(r.Context(), asyncjob.Callback{
		JobID:  req.JobID,
		Status: strings.ToLower(req.Status),
		Data:   req.Data,
		Error:  req.Error,
		File:   file,
	})
	if err != nil {
		respondServiceError(w, r, OpCallback, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// parseMultipartCallback reads the callback fields from a form. data may be
// a JSON document or plain text; the first uploaded file, preferring the
// "file" field, becomes the artifact.
func parseMultipartCallback(r *http.Request) (CallbackRequest, *asyncjob.File, error) {
	if err := r.ParseMultipartForm(MaxCallbackMemory); err != nil {
		return CallbackRequest{}, nil, err
	}

	req := CallbackRequest{
		JobID:  r.FormValue(FormFieldJobID),
		Status: r.FormValue(FormFieldStatus),
		Error:  r.FormValue(FormFieldError),
	}
	if raw := r.FormValue(FormFieldData); raw != "" {
		if json.Valid([]byte(raw)) {
			req.Data = json.RawMessage(raw)
		} else {
			quoted, err := json.Marshal(raw)
			if err != nil {
				return CallbackRequest{}, nil, err
			}
			req.Data = quoted
		}
	}

	header := firstUpload(r.MultipartForm)
	if header == nil {
		return req, nil, nil
	}
	file, err := readUpload(header)
	if err != nil {
		return CallbackRequest{}, nil, err
	}
	return req, file, nil
}

func firstUpload(form *multipart.Form) *multipart.FileHeader {
	if form == nil || len(form.File) == 0 {
		return nil
	}
	if headers := form.File[FormFieldFile]; len(headers) > 0 {
		return headers[0]
	}
	fields := make([]string, 0, len(form.File))
	for name := range form.File {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	for _, name := range fields {
		if headers := form.File[name]; len(headers) > 0 {
			return headers[0]
		}
	}
	return nil
}

func readUpload(header *multipart.FileHeader) (*asyncjob.File, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &asyncjob.File{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
