// Package gen synthesizes the C header and the cmake manifest from an
// ordered tone entry list, and commits them to disk. Build tooling depends
// on the exact section ordering and naming produced here.
package gen

import (
	"fmt"
	"strings"
	"time"

	"github.com/zjrosen/embedtone/internal/tone"
)

// Output filenames, written into the scanned directory.
const (
	HeaderFileName   = "esp_embed_tone.h"
	ManifestFileName = "esp_embed_tone.cmake"
)

// Header renders the full header text for entries: include guard, the
// esp_embed_tone_t struct, one extern declaration per entry, the address
// table, the index enum with its ESP_EMBED_TONE_URL_MAX sentinel, and the
// URL string table.
//
// The four indexed sections are appended inside ONE loop over entries, so
// identical ordering and indices across them hold by construction rather
// than by four passes happening to agree. Returns "" for an empty input.
func Header(entries []tone.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("#pragma once\n")
	b.WriteString("\n")
	b.WriteString("/**\n")
	b.WriteString(" * @brief Structure for embedding tone information\n")
	b.WriteString(" */\n")
	b.WriteString("typedef struct {\n")
	b.WriteString("    const uint8_t *address;  /*!< Pointer to the embedded tone data */\n")
	b.WriteString("    int           size;      /*!< Size of the tone data in bytes */\n")
	b.WriteString("} esp_embed_tone_t;\n")
	b.WriteString("\n")

	var table, enum, urls strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "/**\n * @brief External reference to embedded tone data: %s\n */\n", e.Name)
		fmt.Fprintf(&b, "extern const uint8_t %s[] asm(\"_binary_%s_start\");\n\n", e.Symbol, e.Symbol)

		fmt.Fprintf(&table, "    [%d] = {\n        .address = %s,\n        .size    = %d,\n    },\n",
			e.Index, e.Symbol, e.Size)
		fmt.Fprintf(&enum, "    ESP_EMBED_TONE_%s = %d,\n", strings.ToUpper(e.Symbol), e.Index)
		fmt.Fprintf(&urls, "    \"%s\",\n", e.URL)
	}

	b.WriteString("/**\n * @brief Array of embedded tone information\n */\n")
	b.WriteString("esp_embed_tone_t g_esp_embed_tone[] = {\n")
	b.WriteString(table.String())
	b.WriteString("};\n")
	b.WriteString("\n")

	b.WriteString("/**\n * @brief Enumeration for tone URLs\n */\n")
	b.WriteString("enum esp_embed_tone_index {\n")
	b.WriteString(enum.String())
	fmt.Fprintf(&b, "    ESP_EMBED_TONE_URL_MAX = %d\n", len(entries))
	b.WriteString("};\n")
	b.WriteString("\n")

	b.WriteString("/**\n * @brief Array of tone URLs\n */\n")
	b.WriteString("const char * esp_embed_tone_url[] = {\n")
	b.WriteString(urls.String())
	b.WriteString("};\n")

	return b.String()
}

// Banner returns the fixed license banner prepended to the generated header.
// The generation year is the only varying field and is confined here, so
// re-running on an unchanged directory stays byte-identical otherwise.
func Banner() string {
	return fmt.Sprintf("/*\n * SPDX-FileCopyrightText: %d Espressif Systems (Shanghai) CO LTD\n *\n * SPDX-License-Identifier: Unlicense OR CC0-1.0\n */\n\n", time.Now().Year())
}
