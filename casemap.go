package jsoncodec

import "github.com/reoring/jsoncodec/internal/casemap"

func camelToSnake(s string) string  { return casemap.CamelToSnake(s) }
func snakeToCamel(s string) string  { return casemap.SnakeToCamel(s) }
func camelToPascal(s string) string { return casemap.CamelToPascal(s) }
func pascalToCamel(s string) string { return casemap.PascalToCamel(s) }
func camelToKebab(s string) string  { return casemap.CamelToKebab(s) }
func kebabToCamel(s string) string  { return casemap.KebabToCamel(s) }
