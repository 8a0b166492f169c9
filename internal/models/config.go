/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import "time"

// Config represents the application configuration
type Config struct {
	Gateway  GatewayConfig
	Browser  BrowserConfig
	Database DatabaseConfig
	Server   ServerConfig
	Debug    bool
}

// GatewayConfig holds the remote coin API settings
type GatewayConfig struct {
	BaseURL        string
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
	RequestTimeout time.Duration
}

// BrowserConfig holds collection browsing settings
type BrowserConfig struct {
	PageSize int
}

// DatabaseConfig holds local catalog database settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// ServerConfig holds catalog server settings
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}
