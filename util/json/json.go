package json

import jsoniter "github.com/json-iterator/go"

// Cjson 与标准库兼容的 json 实现
var Cjson = jsoniter.ConfigCompatibleWithStandardLibrary
