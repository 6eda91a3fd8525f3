package exceptions

import "fmt"

type ServiceError struct {
	StatusCode int
	Cause      error
}

func (se *ServiceError) Error() string {
	return se.Cause.Error()
}

type RequestError interface {
	ToServiceError() *ServiceError
	Error() string
}

type ConflictError struct {
	Resource string
	Id       string
}

func (ce *ConflictError) Error() string {
	return fmt.Sprintf("Found conflicting %s with id: %s", ce.Resource, ce.Id)
}

func (ce *ConflictError) ToServiceError() *ServiceError {
	return &ServiceError{
		StatusCode: 409,
		Cause:      ce,
	}
}

func Conflict(resource string, id string) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Id:       id,
	}
}

type NotFoundError struct {
	Resource string
	Id       string
}

func (nfe *NotFoundError) Error() string {
	return fmt.Sprintf("Could not find a %s with id: %s", nfe.Resource, nfe.Id)
}

func (nfe *NotFoundError) ToServiceError() *ServiceError {
	return &ServiceError{
		StatusCode: 404,
		Cause:      nfe,
	}
}

func NotFound(resource string, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Id:       id,
	}
}

type ForbiddenError struct {
	Resource string
	Id       string
}

func (fe *ForbiddenError) Error() string {
	return fmt.Sprintf("Not allowed to modify %s with id: %s", fe.Resource, fe.Id)
}

func (fe *ForbiddenError) ToServiceError() *ServiceError {
	return &ServiceError{
		StatusCode: 403,
		Cause:      fe,
	}
}

func Forbidden(resource string, id string) *ForbiddenError {
	return &ForbiddenError{
		Resource: resource,
		Id:       id,
	}
}

type UnauthorizedError struct {
	Message string
}

func (ue *UnauthorizedError) Error() string {
	return ue.Message
}

func (ue *UnauthorizedError) ToServiceError() *ServiceError {
	return &ServiceError{
		StatusCode: 401,
		Cause:      ue,
	}
}

func Unauthorized(message string) *UnauthorizedError {
	return &UnauthorizedError{
		Message: message,
	}
}

type InvalidInputError struct {
	Message string
}

func (ie *InvalidInputError) Error() string {
	return ie.Message
}

func (ie *InvalidInputError) ToServiceError() *ServiceError {
	return &ServiceError{
		StatusCode: 400,
		Cause:      ie,
	}
}

func InvalidInput(message string) *InvalidInputError {
	return &InvalidInputError{
		Message: message,
	}
}

// MutationFailedError covers the race where a record vanishes between the
// existence check and the mutation. Surfaced, never retried.
type MutationFailedError struct {
	Operation string
	Resource  string
	Id        string
}

func (me *MutationFailedError) Error() string {
	return fmt.Sprintf("Failed to %s %s with id: %s", me.Operation, me.Resource, me.Id)
}

func (me *MutationFailedError) ToServiceError() *ServiceError {
	return &ServiceError{
		StatusCode: 409,
		Cause:      me,
	}
}

func UpdateFailed(resource string, id string) *MutationFailedError {
	return &MutationFailedError{
		Operation: "update",
		Resource:  resource,
		Id:        id,
	}
}

func DeleteFailed(resource string, id string) *MutationFailedError {
	return &MutationFailedError{
		Operation: "delete",
		Resource:  resource,
		Id:        id,
	}
}

type InternalServerError struct {
	Message string
}

func (ise *InternalServerError) Error() string {
	return ise.Message
}

func (ise *InternalServerError) ToServiceError() *ServiceError {
	return &ServiceError{
		StatusCode: 500,
		Cause:      ise,
	}
}

func InternalServer(message string) *InternalServerError {
	return &InternalServerError{
		Message: message,
	}
}
