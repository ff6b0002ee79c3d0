// Package commands define el CLI del módulo de licencias.
//
// Comandos
//
//   - serve     Levanta la API HTTP y la página del dashboard
//   - summary   Imprime métricas, licencias y el feed de actividad
//   - seed      Crea el schema de postgres y carga los fixtures
//
// El comando raíz carga la config (YAML + env) y arma el logger antes de
// que corra cualquier subcomando.
package commands
