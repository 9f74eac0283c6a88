package main

// General API documentation for swaggo. The stub server serves the
// registered document at /swagger/doc.json.
//
// @title           homeprice stub API
// @version         1.0
// @description     Development stand-in for the house price prediction service.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
