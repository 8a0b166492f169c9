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

package database

const (
	schema = `
	-- Reference tables
	CREATE TABLE IF NOT EXISTS countries (
		id_country INTEGER PRIMARY KEY,
		country TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS collections_series (
		id_collection_series INTEGER PRIMARY KEY,
		collection_series TEXT NOT NULL,
		total_coins_in_collection INTEGER,
		full_collection INTEGER,
		id_country INTEGER REFERENCES countries(id_country)
	);

	CREATE INDEX IF NOT EXISTS idx_collections_country ON collections_series(id_country);

	-- Coins; money columns are TEXT decimals
	CREATE TABLE IF NOT EXISTS coins (
		id_coin INTEGER PRIMARY KEY,
		id_country INTEGER REFERENCES countries(id_country),
		id_collection_series INTEGER REFERENCES collections_series(id_collection_series),
		name TEXT,
		type TEXT,
		value TEXT,
		mint TEXT,
		year_century TEXT,
		material TEXT,
		mintage INTEGER,
		weight TEXT,
		diameter TEXT,
		coin_condition TEXT,
		purchase_price TEXT,
		add_expenses TEXT,
		numista_price TEXT,
		purchase_date TEXT,
		count INTEGER NOT NULL DEFAULT 1 CHECK (count >= 0),
		description TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_coins_country ON coins(id_country);
	CREATE INDEX IF NOT EXISTS idx_coins_collection ON coins(id_collection_series);

	CREATE TABLE IF NOT EXISTS coin_images (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		id_coin INTEGER NOT NULL REFERENCES coins(id_coin) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		data BLOB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_coin_images_coin ON coin_images(id_coin, position);
	`

	// Reference queries
	queryGetCountries = `
		SELECT id_country, country
		FROM countries
		ORDER BY country, id_country`

	queryGetCollections = `
		SELECT id_collection_series, collection_series, total_coins_in_collection, full_collection, id_country
		FROM collections_series
		ORDER BY collection_series, id_collection_series`

	queryUpsertCountry = `
		INSERT INTO countries (id_country, country) VALUES (?, ?)
		ON CONFLICT(id_country) DO UPDATE SET country = excluded.country`

	queryUpsertCollection = `
		INSERT INTO collections_series (id_collection_series, collection_series, total_coins_in_collection, full_collection, id_country)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id_collection_series) DO UPDATE SET
			collection_series = excluded.collection_series,
			total_coins_in_collection = excluded.total_coins_in_collection,
			full_collection = excluded.full_collection,
			id_country = excluded.id_country`

	// Coin queries; %s is replaced by the filter clause
	queryListCoins = `
		SELECT c.id_coin, COALESCE(co.country, ''), COALESCE(cs.collection_series, ''),
			COALESCE(c.year_century, ''), COALESCE(c.name, ''), COALESCE(c.value, ''),
			c.count, COALESCE(c.coin_condition, '')
		FROM coins c
		LEFT JOIN countries co ON co.id_country = c.id_country
		LEFT JOIN collections_series cs ON cs.id_collection_series = c.id_collection_series
		%s
		ORDER BY c.id_coin
		LIMIT ? OFFSET ?`

	queryCountCoins = `
		SELECT c.count, c.purchase_price, c.add_expenses, c.numista_price
		FROM coins c
		LEFT JOIN countries co ON co.id_country = c.id_country
		LEFT JOIN collections_series cs ON cs.id_collection_series = c.id_collection_series
		%s`

	queryGetCoinDetail = `
		SELECT c.id_coin, COALESCE(co.country, ''), COALESCE(cs.collection_series, ''),
			COALESCE(c.name, ''), COALESCE(c.type, ''), COALESCE(c.value, ''), COALESCE(c.mint, ''),
			COALESCE(c.year_century, ''), COALESCE(c.material, ''), c.mintage, c.weight, c.diameter,
			COALESCE(c.coin_condition, ''), c.purchase_price, c.add_expenses,
			COALESCE(c.purchase_date, ''), c.count, COALESCE(c.description, '')
		FROM coins c
		LEFT JOIN countries co ON co.id_country = c.id_country
		LEFT JOIN collections_series cs ON cs.id_collection_series = c.id_collection_series
		WHERE c.id_coin = ?`

	queryCoinExists = `
		SELECT 1 FROM coins WHERE id_coin = ?`

	queryUpsertCoin = `
		INSERT INTO coins (id_coin, id_country, id_collection_series, name, type, value, mint, year_century,
			material, mintage, weight, diameter, coin_condition, purchase_price, add_expenses, numista_price,
			purchase_date, count, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id_coin) DO UPDATE SET
			id_country = excluded.id_country,
			id_collection_series = excluded.id_collection_series,
			name = excluded.name,
			type = excluded.type,
			value = excluded.value,
			mint = excluded.mint,
			year_century = excluded.year_century,
			material = excluded.material,
			mintage = excluded.mintage,
			weight = excluded.weight,
			diameter = excluded.diameter,
			coin_condition = excluded.coin_condition,
			purchase_price = excluded.purchase_price,
			add_expenses = excluded.add_expenses,
			numista_price = excluded.numista_price,
			purchase_date = excluded.purchase_date,
			count = excluded.count,
			description = excluded.description`

	// Image queries
	queryGetCoinImages = `
		SELECT data FROM coin_images
		WHERE id_coin = ?
		ORDER BY position, id`

	queryNextImagePosition = `
		SELECT COALESCE(MAX(position), -1) + 1 FROM coin_images WHERE id_coin = ?`

	queryInsertCoinImage = `
		INSERT INTO coin_images (id_coin, position, data) VALUES (?, ?, ?)`

	queryDeleteCoinImages = `
		DELETE FROM coin_images WHERE id_coin = ?`
)
