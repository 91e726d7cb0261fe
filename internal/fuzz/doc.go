// Package fuzztests houses Go fuzz harnesses for name validation and the
// scanner. The goal is to guard against panics and against any path that
// yields a name violating its category rules.
//
// Назначение: прогонять произвольные байты через name.Check, name.FromFuzzBytes
// и лексер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
