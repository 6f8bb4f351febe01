package http

import (
	"net/http"
	"strconv"

	"github.com/synthbit-group/attendance-backend-go/internal/handler/http/response"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/qr"
)

type QRCodeHandler interface {
	AttendanceQR(w http.ResponseWriter, r *http.Request)
}

type qrCodeHandlerImpl struct {
	attendancePageURL string
}

func NewQRCodeHandler(attendancePageURL string) QRCodeHandler {
	return &qrCodeHandlerImpl{
		attendancePageURL: attendancePageURL,
	}
}

// AttendanceQR implements QRCodeHandler. It serves a PNG QR code pointing at
// the kiosk attendance page, for printing at the office entrance.
func (h *qrCodeHandlerImpl) AttendanceQR(w http.ResponseWriter, r *http.Request) {
	size := 0
	if s := r.URL.Query().Get("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 64 || parsed > 1024 {
			response.BadRequest(w, "size must be between 64 and 1024", nil)
			return
		}
		size = parsed
	}

	png, err := qr.EncodePNG(h.attendancePageURL, size)
	if err != nil {
		response.InternalServerError(w, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
