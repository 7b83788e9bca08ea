package types

// StatusCode is any value in the uint16 range; unassigned codes are accepted.
type StatusCode uint16

const (
	StatusContinue           StatusCode = 100
	StatusSwitchingProtocols StatusCode = 101

	StatusOK                   StatusCode = 200
	StatusCreated              StatusCode = 201
	StatusAccepted             StatusCode = 202
	StatusNonAuthoritativeInfo StatusCode = 203
	StatusNoContent            StatusCode = 204
	StatusResetContent         StatusCode = 205

	StatusMultipleChoices   StatusCode = 300
	StatusMovedPermanently  StatusCode = 301
	StatusFound             StatusCode = 302
	StatusSeeOther          StatusCode = 303
	StatusNotModified       StatusCode = 304
	StatusUseProxy          StatusCode = 305
	StatusTemporaryRedirect StatusCode = 307

	StatusBadRequest           StatusCode = 400
	StatusUnauthorized         StatusCode = 401
	StatusPaymentRequired      StatusCode = 402
	StatusForbidden            StatusCode = 403
	StatusNotFound             StatusCode = 404
	StatusMethodNotAllowed     StatusCode = 405
	StatusNotAcceptable        StatusCode = 406
	StatusProxyAuthRequired    StatusCode = 407
	StatusRequestTimeout       StatusCode = 408
	StatusConflict             StatusCode = 409
	StatusGone                 StatusCode = 410
	StatusLengthRequired       StatusCode = 411
	StatusPreconditionFailed   StatusCode = 412
	StatusPayloadTooLarge      StatusCode = 413
	StatusURITooLong           StatusCode = 414
	StatusUnsupportedMediaType StatusCode = 415
	StatusRangeNotSatisfiable  StatusCode = 416
	StatusExpectationFailed    StatusCode = 417
	StatusUpgradeRequired      StatusCode = 426

	StatusInternalServerError     StatusCode = 500
	StatusNotImplemented          StatusCode = 501
	StatusBadGateway              StatusCode = 502
	StatusServiceUnavailable      StatusCode = 503
	StatusGatewayTimeout          StatusCode = 504
	StatusHTTPVersionNotSupported StatusCode = 505
)
