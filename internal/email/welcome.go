package email

import "fmt"

const welcomeSubject = "¡Bienvenido/a a Somos Más!"

// WelcomeBody arma el cuerpo del mail de bienvenida post-registro.
func WelcomeBody(firstName string) (html, text string) {
	html = fmt.Sprintf(
		"<h1>¡Hola %s!</h1><p>Tu cuenta fue creada con éxito. Gracias por sumarte a Somos Más.</p>",
		firstName)
	text = fmt.Sprintf(
		"¡Hola %s! Tu cuenta fue creada con éxito. Gracias por sumarte a Somos Más.",
		firstName)
	return html, text
}

// SendWelcome envía el mail de bienvenida. Best-effort: el caller decide si
// loguear el error, nunca corta el registro.
func SendWelcome(s Sender, to, firstName string) error {
	if s == nil {
		return nil
	}
	html, text := WelcomeBody(firstName)
	return s.Send(to, welcomeSubject, html, text)
}
