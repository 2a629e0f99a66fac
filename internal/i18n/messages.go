package i18n

// Message keys shared by forms and handlers.
const (
	MsgRequired         = "This field is required."
	MsgMaxLength        = "Ensure this value has at most %d characters."
	MsgInvalidLogin     = "Please enter a correct username and password. Note that both fields may be case-sensitive."
	MsgUsernameTaken    = "A user with that username already exists."
	MsgUsernameInvalid  = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MsgPasswordMismatch = "The two password fields didn't match."
	MsgPasswordShort    = "This password is too short. It must contain at least %d characters."
	MsgPasswordNumeric  = "This password is entirely numeric."
	MsgPasswordCommon   = "This password is too common."
	MsgPasswordLikeUser = "The password is too similar to the username."
	MsgCurrentPassword  = "The current password is not valid."
	MsgNewPasswordMatch = "Passwords do not match."
	MsgThrottled        = "Too many failed login attempts. Try again later."
	MsgInvalidForm      = "The submitted form is invalid."
)

var spanish = map[string]string{
	MsgRequired:         "Este campo es obligatorio.",
	MsgMaxLength:        "Asegúrese de que este valor tenga como máximo %d caracteres.",
	MsgInvalidLogin:     "Por favor, introduzca un nombre de usuario y clave correctos. Observe que ambos campos pueden ser sensibles a mayúsculas.",
	MsgUsernameTaken:    "Ya existe un usuario con este nombre.",
	MsgUsernameInvalid:  "Introduzca un nombre de usuario válido. Este valor solo puede contener letras, números y los caracteres @/./+/-/_.",
	MsgPasswordMismatch: "Los dos campos de contraseña no coinciden.",
	MsgPasswordShort:    "La contraseña es demasiado corta. Debe contener al menos %d caracteres.",
	MsgPasswordNumeric:  "La contraseña está formada completamente por dígitos.",
	MsgPasswordCommon:   "La contraseña es demasiado común.",
	MsgPasswordLikeUser: "La contraseña es demasiado similar al nombre de usuario.",
	MsgCurrentPassword:  "La contraseña actual no es válida.",
	MsgNewPasswordMatch: "Las contraseñas no coinciden.",
	MsgThrottled:        "Demasiados intentos fallidos de inicio de sesión. Inténtelo más tarde.",
	MsgInvalidForm:      "El formulario enviado no es válido.",

	"Tasks":                           "Tareas",
	"Hello, %s":                       "Hola, %s",
	"You have %d pending tasks":       "Tienes %d tareas pendientes",
	"Search":                          "Buscar",
	"New task":                        "Nueva tarea",
	"Create task":                     "Crear tarea",
	"Edit task":                       "Editar tarea",
	"Delete task":                     "Eliminar tarea",
	"Edit":                            "Editar",
	"Delete":                          "Eliminar",
	"Back":                            "Volver",
	"Save":                            "Guardar",
	"Title":                           "Título",
	"Description":                     "Descripción",
	"Completed":                       "Completada",
	"Created":                         "Creada",
	"Completed at":                    "Completada el",
	"No tasks found.":                 "No hay tareas.",
	"Previous":                        "Anterior",
	"Next":                            "Siguiente",
	"Page %d of %d":                   "Página %d de %d",
	"Log in":                          "Iniciar sesión",
	"Log out":                         "Cerrar sesión",
	"Register":                        "Registrarse",
	"Username":                        "Nombre de usuario",
	"Password":                        "Contraseña",
	"Password confirmation":           "Confirmación de contraseña",
	"Current password":                "Contraseña actual",
	"New password":                    "Nueva contraseña",
	"Confirm new password":            "Confirmar nueva contraseña",
	"Edit profile":                    "Editar perfil",
	"Confirm":                         "Confirmar",
	"Page not found":                  "Página no encontrada",
	"Something went wrong":            "Algo salió mal",
	"Already have an account?":        "¿Ya tienes una cuenta?",
	"Don't have an account?":          "¿No tienes una cuenta?",
	"Language":                        "Idioma",

	"Are you sure you want to delete \"%s\"?": "¿Seguro que quieres eliminar \"%s\"?",
}
