package handlers

const (
	msgLoginOK            = "Login exitoso"
	msgMissingCredentials = "Email y contraseña son requeridos."
	msgInvalidCredentials = "Credenciales inválidas."
	msgServerError        = "Ocurrió un error en el servidor."
	msgMissingBecaFields  = "Nombre y descripción son requeridos."
	msgWelcome            = "Bienvenido a la API de Becas CGSU."
)
