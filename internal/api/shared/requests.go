package shared

import (
	"io"
	"net/http"

	"github.com/phrazzld/eholdings-api/internal/domain"
)

// MaxBodyBytes caps the size of request bodies.
const MaxBodyBytes = 1 << 20

// ReadBody reads the whole request body, rejecting bodies over MaxBodyBytes.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, domain.NewValidationError(domain.ErrInvalidBody, domain.TitleInvalidBody, err.Error())
	}
	return body, nil
}
