// Package domain contains the core domain entities and types used by the
// application. These types describe patient records, the feature vector
// handed to the model artifacts, the risk policy and prediction outcomes.
// They are intentionally free of infrastructure concerns so they can be
// shared by the façade, the HTTP adapter, the dashboard and storage.
package domain
