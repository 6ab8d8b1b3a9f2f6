// Copyright 2025 TimeWtr
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"github.com/sirupsen/logrus"
)

type LogrusAdapter struct {
	entry *logrus.Entry
	level Level
}

func NewLogrusAdapter(logger *logrus.Logger) Logger {
	level := getLevel()
	logger.SetLevel(convertLogrusLevel(level))
	return &LogrusAdapter{
		entry: logrus.NewEntry(logger),
		level: level,
	}
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

func (l *LogrusAdapter) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

func (l *LogrusAdapter) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

func (l *LogrusAdapter) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

func (l *LogrusAdapter) Fatal(msg string, fields ...Field) {
	l.log(LevelFatal, msg, fields...)
}

func (l *LogrusAdapter) Panic(msg string, fields ...Field) {
	l.log(LevelPanic, msg, fields...)
}

func (l *LogrusAdapter) Sync() error {
	return nil
}

func (l *LogrusAdapter) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}

	return &LogrusAdapter{
		entry: l.entry.WithFields(convertLogrusFields(fields)),
		level: l.level,
	}
}

func (l *LogrusAdapter) SetLevel(level Level) error {
	if !level.valid() {
		return ErrLevel
	}
	l.level = level
	l.entry.Logger.SetLevel(convertLogrusLevel(level))
	return nil
}

func (l *LogrusAdapter) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	entry := l.entry
	if len(fields) > 0 {
		entry = entry.WithFields(convertLogrusFields(fields))
	}

	switch level {
	case LevelDebug:
		entry.Debug(msg)
	case LevelInfo:
		entry.Info(msg)
	case LevelWarn:
		entry.Warn(msg)
	case LevelError:
		entry.Error(msg)
	case LevelFatal:
		entry.Fatal(msg)
	case LevelPanic:
		entry.Panic(msg)
	default:
	}
}

func convertLogrusFields(fields []Field) logrus.Fields {
	logrusFields := make(logrus.Fields, len(fields))
	for _, field := range fields {
		logrusFields[field.Key] = field.Val
	}

	return logrusFields
}

func convertLogrusLevel(level Level) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	case LevelFatal:
		return logrus.FatalLevel
	case LevelPanic:
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
