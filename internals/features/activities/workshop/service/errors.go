package service

import "errors"

var (
	ErrActivityNotFound = errors.New("actividad no encontrada")
	ErrNotAWorkshop     = errors.New("la actividad no es un taller")
	ErrNotActivityCoach = errors.New("el usuario no es el coach de la actividad")
	ErrInvalidRating    = errors.New("la calificación debe estar entre 1 y 5")
	ErrSurveySave       = errors.New("no se pudo guardar la evaluación")
)
