package postgres

// BackendName labels this store in metrics
const BackendName = "postgres"
