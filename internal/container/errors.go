package container

import "errors"

var (
	ErrContainerSealed   = errors.New("container is sealed")
	ErrDuplicateProvider = errors.New("provider already registered for type")
	ErrNoProvider        = errors.New("no provider registered for type")
	ErrDependencyCycle   = errors.New("dependency cycle detected")
	ErrProvisionFailed   = errors.New("error provisioning instance")
	ErrProvisionRejected = errors.New("provisioned instance rejected by listener")
	ErrUnexpectedType    = errors.New("resolved instance has unexpected type")
	ErrNilProvider       = errors.New("provider must not be nil")
	ErrUnexpectedResult  = errors.New("intercepted call returned unexpected result type")
	ErrMissingArgument   = errors.New("intercepted call received too few arguments")
)
