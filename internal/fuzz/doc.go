// Package fuzztests houses Go fuzz harnesses for the lexer and the fixed-point
// runner. They guard against panics and lost bytes on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер и набор фиксеров.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/lexer, internal/runner, internal/fixers, internal/testkit.
package fuzztests
