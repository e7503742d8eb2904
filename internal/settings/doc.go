// Package settings handles loading and saving the persisted flow
// configuration.
//
// Settings live in ~/.config/flow/settings.toml and hold:
//
//   - storage_root: directory containing per-flow script folders and the
//     registry file
//   - script_dialect: shell dialect used when generating scripts
//     (bash, zsh, powershell, cmd)
//   - default_flow_path: working directory offered as the default when
//     creating a flow
//   - command_dir: derived as storage_root/commands, persisted for
//     external tooling
//   - initialized: gate checked by every command except init and
//     reset-settings
//
// There is no caching layer and no package-level singleton: commands load
// the settings once per invocation and thread the value through explicitly.
package settings
