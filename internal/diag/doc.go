// Package diag collects diagnostics produced while scanning name sources.
//
// Назначение: единая модель диагностик (Severity, Code, Diagnostic), накопитель
// Bag с лимитом и детерминированной сортировкой, Reporter для фаз.
//
// Name rejections from internal/name carry only a reason and a byte offset
// inside the candidate; the scanner converts them into a Diagnostic with a
// source span through CodeForReason.
package diag
