package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "Erro interno do servidor."

	UserAlreadyExistsCode              = 1001
	UserAlreadyExistsMessage           = "Usuário já existe"
	UserNotFoundCode                   = 1002
	UserNotFoundMessage                = "Usuário não encontrado"
	UserInvalidPasswordCode            = 1003
	UserInvalidPasswordMessage         = "Senha incorreta"
	UserNotVerifiedCode                = 1004
	UserNotVerifiedMessage             = "Email não verificado. Verifique seu email."
	PendingRegistrationNotFoundCode    = 1005
	PendingRegistrationNotFoundMessage = "Dados do usuário não encontrados ou expirados"
	VerificationCodeInvalidCode        = 1006
	VerificationCodeInvalidMessage     = "Código de verificação incorreto"
	VerificationCodeSendFailedCode     = 1007
	VerificationCodeSendFailedMessage  = "Erro ao enviar código de verificação"
	VerificationFailedCode             = 1008
	VerificationFailedMessage          = "Erro ao verificar o código"
	LoginFailedCode                    = 1009
	LoginFailedMessage                 = "Erro ao fazer login"
	UnauthorizedCode                   = 1010
	UnauthorizedMessage                = "Token ausente ou inválido"
	ClientNotFoundCode                 = 2001
	ClientNotFoundMessage              = "Cliente não encontrado."
	ClientCreateFailedCode             = 2002
	ClientCreateFailedMessage          = "Erro ao criar cliente."
	ClientUpdateFailedCode             = 2003
	ClientUpdateFailedMessage          = "Erro ao editar cliente."
	ClientListFailedCode               = 2004
	ClientListFailedMessage            = "Erro ao listar clientes."
	ClientSearchFailedCode             = 2005
	ClientSearchFailedMessage          = "Erro ao buscar clientes."
	ClientDeleteFailedCode             = 2006
	ClientDeleteFailedMessage          = "Erro ao excluir cliente."
	AnamneseNotFoundCode               = 3001
	AnamneseNotFoundMessage            = "Ficha de anamnese não encontrada."
	AnamneseCreateFailedCode           = 3002
	AnamneseCreateFailedMessage        = "Erro ao criar ficha de anamnese."
	AnamneseUpdateFailedCode           = 3003
	AnamneseUpdateFailedMessage        = "Erro ao atualizar ficha de anamnese."
	AnamneseDeleteFailedCode           = 3004
	AnamneseDeleteFailedMessage        = "Erro ao excluir ficha de anamnese."
	AnamneseListFailedCode             = 3005
	AnamneseListFailedMessage          = "Erro ao listar fichas de anamnese."
	AnamnesePDFFailedCode              = 3006
	AnamnesePDFFailedMessage           = "Erro ao gerar PDF da ficha de anamnese."
	ValidationErrorCode                = 6000
	ValidationErrorMessage             = "Todos os campos são obrigatórios."
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

var errorMessages = map[ErrorCode]ErrorMessage{
	UserAlreadyExistsCode:           UserAlreadyExistsMessage,
	UserNotFoundCode:                UserNotFoundMessage,
	UserInvalidPasswordCode:         UserInvalidPasswordMessage,
	UserNotVerifiedCode:             UserNotVerifiedMessage,
	PendingRegistrationNotFoundCode: PendingRegistrationNotFoundMessage,
	VerificationCodeInvalidCode:     VerificationCodeInvalidMessage,
	VerificationCodeSendFailedCode:  VerificationCodeSendFailedMessage,
	VerificationFailedCode:          VerificationFailedMessage,
	LoginFailedCode:                 LoginFailedMessage,
	UnauthorizedCode:                UnauthorizedMessage,
	ClientNotFoundCode:              ClientNotFoundMessage,
	ClientCreateFailedCode:          ClientCreateFailedMessage,
	ClientUpdateFailedCode:          ClientUpdateFailedMessage,
	ClientListFailedCode:            ClientListFailedMessage,
	ClientSearchFailedCode:          ClientSearchFailedMessage,
	ClientDeleteFailedCode:          ClientDeleteFailedMessage,
	AnamneseNotFoundCode:            AnamneseNotFoundMessage,
	AnamneseCreateFailedCode:        AnamneseCreateFailedMessage,
	AnamneseUpdateFailedCode:        AnamneseUpdateFailedMessage,
	AnamneseDeleteFailedCode:        AnamneseDeleteFailedMessage,
	AnamneseListFailedCode:          AnamneseListFailedMessage,
	AnamnesePDFFailedCode:           AnamnesePDFFailedMessage,
	ValidationErrorCode:             ValidationErrorMessage,
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	message, ok := errorMessages[code]
	if !ok {
		return &ErrorStruct{
			ErrorCode:    UnknownErrorCode,
			ErrorMessage: UnknownErrorMessage,
		}
	}

	return &ErrorStruct{
		ErrorCode:    code,
		ErrorMessage: message,
	}
}
