package service

import (
	"context"

	"github.com/MKhiriev/go-contract-guard/internal/container"
	"github.com/MKhiriev/go-contract-guard/internal/validation"
	"github.com/MKhiriev/go-contract-guard/models"
)

// AccountValidationService dispatches every AccountService call through the
// container so that bound interceptors validate arguments and results
// against the contracts declared in RegisterContracts.
type AccountValidationService struct {
	inner   AccountService
	invoker container.Invoker
}

func NewAccountValidationService(invoker container.Invoker) AccountServiceWrapper {
	return &AccountValidationService{
		invoker: invoker,
	}
}

func (v *AccountValidationService) Register(ctx context.Context, request models.SignupRequest) (models.Account, error) {
	return container.Call1(ctx, v.invoker, v, "Register", request, v.inner.Register)
}

func (v *AccountValidationService) Authenticate(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	return container.Call1(ctx, v.invoker, v, "Authenticate", credentials, v.inner.Authenticate)
}

func (v *AccountValidationService) Find(ctx context.Context, login string) (models.Account, error) {
	return container.Call1(ctx, v.invoker, v, "Find", login, v.inner.Find)
}

func (v *AccountValidationService) Wrap(wrapper AccountService) AccountService {
	v.inner = wrapper
	return v
}

// RegisterContracts declares the method contracts of AccountValidationService.
func RegisterContracts(registry *validation.Registry) error {
	return registry.Register(
		validation.Method[AccountValidationService]("Register").
			CascadeParam("request", "").
			CascadeReturn("").
			Spec(),
		validation.Method[AccountValidationService]("Authenticate").
			CascadeParam("credentials", "").
			CascadeReturn("").
			Spec(),
		validation.Method[AccountValidationService]("Find").
			Param("login", "required,alphanum,max=32").
			CascadeReturn("").
			Spec(),
	)
}
