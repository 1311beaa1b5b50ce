package req

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"product_viewer/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

const maxBodySize = 1 << 20

// Read decodes the JSON body of r into dest and validates it with the
// struct's validate tags. Both failures are invalid argument errors.
func Read(r *http.Request, dest any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}
