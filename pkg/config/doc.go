// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package config manages the application configuration for ninepaste.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +----+----+
	|   YAML    | |  JSON   | |   HCL   |
	|  Parser   | | Parser  | | Parser  |
	+-----------+ +---------+ +---------+

🎯 Purpose:
- Loads and saves application settings (poll interval, auto-transform,
  hotkeys, history limits, theme)
- Validates configuration values and fills defaults
- Supports multiple config formats behind one parser registry

🔄 Flow:
1. Reads configuration from file (defaults when absent)
2. Parses format-specific syntax
3. Validates values and hotkey chords
4. Provides the validated config to the daemon and CLI

📝 Design Philosophy:
The config package owns settings only. Recipes live in their own store;
the active_recipe_id field here is a display mirror, never the source of
truth.
*/
package config
